package domain

import "errors"

// Sentinel errors shared by services and repositories. The API error handler
// translates each into the uniform error envelope with its HTTP status and
// error code; nothing below this layer knows about HTTP.
var (
	ErrBadRequest        = errors.New("bad request")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrObjectNotFound    = errors.New("object not found")
	ErrUnauthorizedAdmin = errors.New("unauthorized admin")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	ErrCsrfHeaderMissing   = errors.New("csrf header missing")
	ErrCsrfHeaderMalformed = errors.New("csrf header malformed")
	ErrCsrfTokenInvalid    = errors.New("csrf token invalid")
)
