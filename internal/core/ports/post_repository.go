package ports

import (
	"context"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

// PostRepository defines the interface for post persistence. AddTags and
// RemoveTags edit the membership set in place and are only ever called from
// inside a TxManager transaction.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	FindPublic(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error

	AddTags(ctx context.Context, postID string, tagIDs []string) error
	RemoveTags(ctx context.Context, postID string, tagIDs []string) error

	// RemoveTagFromAll strips tagID from every post referencing it, so a
	// deleted tag leaves no dangling ids behind.
	RemoveTagFromAll(ctx context.Context, tagID string) error
}
