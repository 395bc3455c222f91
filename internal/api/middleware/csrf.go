package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/blog-api/internal/api/metrics"
	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
)

// CsrfCookie holds the secret side of the double-submit pair. Unlike the
// session cookie it is readable by the client, which must echo the derived
// token back in the configured header on every mutating request.
const CsrfCookie = "csrf_secret"

// Csrf enforces double-submit validation on mutating methods. Safe methods
// pass through untouched so that token bootstrap and reads never require a
// header.
func Csrf(guard ports.CsrfGuard, headerName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			var secret string
			if cookie, err := c.Cookie(CsrfCookie); err == nil {
				secret = cookie.Value
			}

			header := c.Request().Header.Get(headerName)
			if err := guard.Validate(header, secret); err != nil {
				metrics.CsrfRejectionsTotal.WithLabelValues(csrfReason(err)).Inc()
				return err
			}
			return next(c)
		}
	}
}

// SetCsrfCookie commits the secret side of a freshly generated pair.
func SetCsrfCookie(c echo.Context, secret string) {
	c.SetCookie(&http.Cookie{
		Name:     CsrfCookie,
		Value:    secret,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

func csrfReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCsrfHeaderMissing):
		return "header_missing"
	case errors.Is(err, domain.ErrCsrfHeaderMalformed):
		return "header_malformed"
	default:
		return "token_invalid"
	}
}
