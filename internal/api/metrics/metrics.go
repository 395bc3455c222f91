// Package metrics defines and registers all custom Prometheus metrics for
// the portfolio admin API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts session tokens minted, including sliding renewals.
// Label:
//   - kind: "login" (initial issuance) or "refresh" (sliding renewal)
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued, by kind.",
	},
	[]string{"kind"},
)

// TokenRejectionsTotal counts failed token verifications.
// Label:
//   - reason: "expired" or "invalid"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected session tokens, by reason.",
	},
	[]string{"reason"},
)

// ── CSRF metrics ──────────────────────────────────────────────────────────────

// CsrfRejectionsTotal counts requests blocked by CSRF validation.
// Label:
//   - reason: "header_missing", "header_malformed" or "token_invalid"
var CsrfRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "csrf_rejections_total",
		Help:      "Total number of mutating requests rejected by CSRF validation.",
	},
	[]string{"reason"},
)

// ── Reconciliation metrics ────────────────────────────────────────────────────

// TagReconciliationsTotal counts post↔tag reconciliation outcomes.
// Label:
//   - result: "success" or "error"
var TagReconciliationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tag_reconciliations_total",
		Help:      "Total number of tag-set reconciliations, by result.",
	},
	[]string{"result"},
)
