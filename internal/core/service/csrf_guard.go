package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

const csrfSecretLength = 32

// CsrfGuard implements the double-submit pattern: a random secret is
// committed to a cookie while its HMAC — keyed with a process-wide secret —
// is handed to the client to echo back in a request header. Validation
// recomputes the HMAC from the cookie secret; token and secret are always
// distinct values.
type CsrfGuard struct {
	key       []byte
	tokenType string
}

// NewCsrfGuard builds a guard keyed with secret. tokenType is the scheme
// prefix expected in the request header, e.g. "Csrf" for "Csrf <token>".
func NewCsrfGuard(secret []byte, tokenType string) *CsrfGuard {
	return &CsrfGuard{key: secret, tokenType: tokenType}
}

// Generate produces a fresh cookie secret and its matching header token,
// already formatted as "<TokenType> <token>".
func (g *CsrfGuard) Generate() (cookieSecret, headerToken string, err error) {
	raw := make([]byte, csrfSecretLength)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate csrf secret: %w", err)
	}
	cookieSecret = hex.EncodeToString(raw)
	headerToken = g.tokenType + " " + g.derive(cookieSecret)
	return cookieSecret, headerToken, nil
}

// Validate checks the echoed header value against the cookie secret.
func (g *CsrfGuard) Validate(headerValue, cookieSecret string) error {
	if headerValue == "" {
		return domain.ErrCsrfHeaderMissing
	}

	scheme, token, found := strings.Cut(headerValue, " ")
	if !found || scheme != g.tokenType || token == "" {
		return domain.ErrCsrfHeaderMalformed
	}

	if cookieSecret == "" {
		return domain.ErrCsrfTokenInvalid
	}

	expected := g.derive(cookieSecret)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(token)) != 1 {
		return domain.ErrCsrfTokenInvalid
	}
	return nil
}

func (g *CsrfGuard) derive(secret string) string {
	mac := hmac.New(sha256.New, g.key)
	mac.Write([]byte(secret))
	return hex.EncodeToString(mac.Sum(nil))
}
