package ports

import (
	"context"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

// TagService implements tag CRUD.
type TagService interface {
	CreateTag(ctx context.Context, title, slug string) (*domain.Tag, error)
	GetTag(ctx context.Context, id string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]domain.Tag, error)
	UpdateTag(ctx context.Context, id string, title, slug *string) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}
