package ports

// CsrfGuard implements double-submit CSRF protection. Generate returns the
// secret committed to a cookie and the token the client must echo back in
// the configured request header; Validate recomputes the expected token from
// the cookie secret and compares it against the header value.
type CsrfGuard interface {
	Generate() (cookieSecret, headerToken string, err error)
	Validate(headerValue, cookieSecret string) error
}
