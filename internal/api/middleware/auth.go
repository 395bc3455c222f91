package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/blog-api/internal/api/metrics"
	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
)

// AccessTokenCookie is the session cookie carrying the signed token, with
// the value formatted as "Bearer <token>".
const AccessTokenCookie = "access_token"

// AdminIDKey is the echo context key under which the verified subject id is
// stored for handlers.
const AdminIDKey = "admin_id"

// Auth verifies the session cookie and, on success, slides the session
// forward: a fresh token is minted and re-set on the response before the
// handler runs. The token just presented stays valid until its own expiry;
// there is no server-side revocation.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrUnauthorizedAdmin
			}

			scheme, token, found := strings.Cut(cookie.Value, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrTokenInvalid
			}

			adminID, err := tokens.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenRejectionsTotal.WithLabelValues("expired").Inc()
				} else {
					metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				}
				return err
			}

			refreshed, err := tokens.Issue(adminID)
			if err != nil {
				return err
			}
			SetAccessTokenCookie(c, refreshed)
			metrics.TokensIssuedTotal.WithLabelValues("refresh").Inc()

			c.Set(AdminIDKey, adminID)
			return next(c)
		}
	}
}

// SetAccessTokenCookie writes the http-only session cookie in the
// "Bearer <token>" form expected back by Auth.
func SetAccessTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "Bearer " + token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAccessTokenCookie expires the session cookie on logout.
func ClearAccessTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
