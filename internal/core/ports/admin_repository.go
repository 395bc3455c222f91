package ports

import (
	"context"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

// AdminRepository defines the interface for admin credential persistence.
// Lookups return domain.ErrObjectNotFound when no admin matches; they never
// overload a boolean with a domain value.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Update(ctx context.Context, admin *domain.Admin) error
	Delete(ctx context.Context, id string) error
}
