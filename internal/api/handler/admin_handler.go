package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/blog-api/internal/api/metrics"
	"github.com/portfolio-site/blog-api/internal/api/middleware"
	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
)

type AdminHandler struct {
	authService ports.AuthService
	csrf        ports.CsrfGuard
}

func NewAdminHandler(authService ports.AuthService, csrf ports.CsrfGuard) *AdminHandler {
	return &AdminHandler{authService: authService, csrf: csrf}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateAdminRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

type csrfTokenResponse struct {
	CsrfToken string `json:"csrf_token"`
}

type adminResponse struct {
	Admin *domain.Admin `json:"admin"`
}

// CsrfToken mints a fresh double-submit pair: the secret goes out as a
// cookie, the derived token in the body for the client to echo back in the
// request header.
func (h *AdminHandler) CsrfToken(c echo.Context) error {
	secret, token, err := h.csrf.Generate()
	if err != nil {
		return err
	}
	middleware.SetCsrfCookie(c, secret)
	return c.JSON(http.StatusOK, csrfTokenResponse{CsrfToken: token})
}

// Register creates a new admin account.
func (h *AdminHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	admin, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, adminResponse{Admin: admin})
}

// Login verifies credentials and starts a session by setting the http-only
// access token cookie. The token never appears in the response body.
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()

	middleware.SetAccessTokenCookie(c, token)
	return c.JSON(http.StatusOK, adminResponse{Admin: admin})
}

// Logout ends the session by expiring the access token cookie. Tokens are
// stateless, so the previously issued token remains valid until its expiry;
// logout only clears the client's copy.
func (h *AdminHandler) Logout(c echo.Context) error {
	middleware.ClearAccessTokenCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// MyInfo returns the authenticated admin's profile.
func (h *AdminHandler) MyInfo(c echo.Context) error {
	adminID, err := ctxAdminID(c)
	if err != nil {
		return err
	}

	admin, err := h.authService.GetAdmin(c.Request().Context(), adminID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminResponse{Admin: admin})
}

// Update applies a partial profile update; a supplied password is re-hashed
// with a fresh salt.
func (h *AdminHandler) Update(c echo.Context) error {
	adminID, err := ctxAdminID(c)
	if err != nil {
		return err
	}

	var req updateAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	admin, err := h.authService.UpdateAdmin(c.Request().Context(), adminID, ports.UpdateAdminInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminResponse{Admin: admin})
}

// Delete removes the authenticated admin's account and ends the session.
func (h *AdminHandler) Delete(c echo.Context) error {
	adminID, err := ctxAdminID(c)
	if err != nil {
		return err
	}

	if err := h.authService.DeleteAdmin(c.Request().Context(), adminID); err != nil {
		return err
	}
	middleware.ClearAccessTokenCookie(c)
	return c.NoContent(http.StatusNoContent)
}
