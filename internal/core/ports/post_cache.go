package ports

import (
	"context"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

// PostCache caches the public post listing. A miss is reported as
// (nil, false, nil); cache failures are surfaced so the caller can fall
// through to the repository.
type PostCache interface {
	GetPublic(ctx context.Context) ([]domain.Post, bool, error)
	SetPublic(ctx context.Context, posts []domain.Post) error
	InvalidatePublic(ctx context.Context) error
}
