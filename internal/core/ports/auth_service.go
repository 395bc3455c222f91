package ports

import (
	"context"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

// AuthService implements the admin credential lifecycle: registration,
// login, profile updates and removal.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.Admin, error)
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
	GetAdmin(ctx context.Context, id string) (*domain.Admin, error)
	UpdateAdmin(ctx context.Context, id string, input UpdateAdminInput) (*domain.Admin, error)
	DeleteAdmin(ctx context.Context, id string) error
}

// UpdateAdminInput carries partial admin updates; nil fields are untouched.
type UpdateAdminInput struct {
	Email    *string
	Password *string
}
