package domain

import "time"

// Admin is the single administrative identity of the site. The password is
// stored as a bcrypt hash derived from password, per-credential salt and a
// process-wide pepper; the plaintext never leaves the auth service.
type Admin struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Salt           string    `json:"-"`
	HashedPassword string    `json:"-"`
	EmailVerified  bool      `json:"email_verified"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
