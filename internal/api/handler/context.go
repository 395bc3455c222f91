package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/blog-api/internal/api/middleware"
	"github.com/portfolio-site/blog-api/internal/core/domain"
)

// ctxAdminID extracts the admin id injected by the Auth middleware. An empty
// id means the middleware did not run on this route; treat it as an
// unauthorized request rather than panicking downstream.
func ctxAdminID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.AdminIDKey).(string)
	if id == "" {
		return "", domain.ErrUnauthorizedAdmin
	}
	return id, nil
}

// bindAndValidate decodes the request body and runs struct validation,
// folding both failure modes into the bad-request envelope.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: invalid payload", domain.ErrBadRequest)
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrBadRequest, err.Error())
	}
	return nil
}
