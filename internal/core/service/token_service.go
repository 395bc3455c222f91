package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

// TokenService issues and verifies HMAC-signed session tokens carrying
// exactly the claims sub, iat, nbf, exp, jti and iss. It holds no server-side
// state: each issuance mints a unique jti, and refreshing never invalidates
// tokens issued earlier for the same subject.
type TokenService struct {
	secret   []byte
	issuer   string
	method   *jwt.SigningMethodHMAC
	lifetime time.Duration
	skew     time.Duration
	now      func() time.Time
}

// NewTokenService builds a TokenService signing with HS256. lifetime is the
// validity window granted at issuance; skew backdates nbf to absorb clock
// drift between the issuing and verifying hosts.
func NewTokenService(secret []byte, issuer string, lifetime, skew time.Duration) *TokenService {
	s, _ := NewTokenServiceWithAlgorithm(secret, issuer, "HS256", lifetime, skew)
	return s
}

// NewTokenServiceWithAlgorithm selects the HMAC variant by name: HS256,
// HS384 or HS512. Any other algorithm is refused at construction so an
// unsupported (or asymmetric) method can never reach signing.
func NewTokenServiceWithAlgorithm(secret []byte, issuer, algorithm string, lifetime, skew time.Duration) (*TokenService, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &TokenService{
		secret:   secret,
		issuer:   issuer,
		method:   method,
		lifetime: lifetime,
		skew:     skew,
		now:      time.Now,
	}, nil
}

// Issue signs a fresh token for the given subject. exp−iat equals the
// configured lifetime and iat−nbf the configured skew, exactly.
func (s *TokenService) Issue(subjectID string) (string, error) {
	now := s.now().Truncate(time.Second)
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now.Add(-s.skew)),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		ID:        uuid.NewString(),
		Issuer:    s.issuer,
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and the nbf ≤ now ≤ exp window, returning
// the subject id. Expiry maps to domain.ErrTokenExpired; every other failure
// (bad signature, malformed structure, issuer mismatch, wrong algorithm) to
// domain.ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
