package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const saltLength = 16

// PasswordHasher derives and verifies credential secrets. Each credential
// gets a fresh random salt; a process-wide pepper is mixed in on top. The
// concatenation order password∥salt∥pepper is fixed — changing it would
// invalidate every stored hash.
type PasswordHasher struct {
	pepper string
	cost   int
}

// NewPasswordHasher builds a hasher with the given pepper and bcrypt work
// factor. A cost of zero or below selects the bcrypt default.
func NewPasswordHasher(pepper string, cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{pepper: pepper, cost: cost}
}

// HashPassword generates a fresh salt and returns it together with the
// derived hash. The peppered input is pre-digested with SHA-256 so bcrypt's
// 72-byte input cap can never truncate it.
func (h *PasswordHasher) HashPassword(password string) (salt, hash string, err error) {
	raw := make([]byte, saltLength)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)

	digest, err := bcrypt.GenerateFromPassword(h.compose(password, salt), h.cost)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}
	return salt, string(digest), nil
}

// VerifyPassword recomputes the hash for the candidate password and reports
// whether it matches. It never reveals which component mismatched.
func (h *PasswordHasher) VerifyPassword(password, salt, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.compose(password, salt)) == nil
}

func (h *PasswordHasher) compose(password, salt string) []byte {
	sum := sha256.Sum256([]byte(password + salt + h.pepper))
	return sum[:]
}
