package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Message
// is always a list so clients can render multi-line validation output
// without special-casing.
type errorResponse struct {
	Status  int      `json:"status"`
	Code    string   `json:"code"`
	Message []string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"status", "code", "message"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msgs := resolveError(err, log, c)
		_ = c.JSON(status, errorResponse{Status: status, Code: code, Message: msgs})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, http.StatusText(he.Code), []string{fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic status and code pairs.
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "Expired Signature", []string{"access token has expired"}
	case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrUnauthorizedAdmin):
		return http.StatusUnauthorized, "Unauthorized Admin", []string{"admin authentication required"}
	case errors.Is(err, domain.ErrCsrfHeaderMissing):
		return http.StatusUnprocessableEntity, "CSRF Header Missing", []string{"csrf header is required on mutating requests"}
	case errors.Is(err, domain.ErrCsrfHeaderMalformed):
		return http.StatusUnprocessableEntity, "CSRF Header Malformed", []string{"csrf header does not match the expected token format"}
	case errors.Is(err, domain.ErrCsrfTokenInvalid):
		return http.StatusUnauthorized, "CSRF Token Invalid", []string{"csrf token does not match the committed secret"}
	case errors.Is(err, domain.ErrObjectNotFound):
		return http.StatusNotFound, "Object Not Found", []string{"requested object does not exist"}
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return http.StatusBadRequest, "Already Registered", []string{"email is already registered"}
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, "Bad Request", []string{err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error", []string{"internal server error"}
}
