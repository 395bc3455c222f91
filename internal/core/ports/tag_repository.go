package ports

import (
	"context"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

// TagRepository defines the interface for tag persistence.
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	FindByID(ctx context.Context, id string) (*domain.Tag, error)
	FindAll(ctx context.Context) ([]domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id string) error
}
