package ports

// TokenService issues and verifies signed session tokens. The service is
// stateless: every call to Issue mints a fresh token with a unique jti, and
// previously issued tokens stay valid until their own expiry.
type TokenService interface {
	Issue(subjectID string) (string, error)
	Verify(token string) (string, error)
}
