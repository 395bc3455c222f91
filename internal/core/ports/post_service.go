package ports

import (
	"context"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

// PostService implements post CRUD and tag-set reconciliation.
type PostService interface {
	CreatePost(ctx context.Context, authorID string, input CreatePostInput) (*domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	ListMyPosts(ctx context.Context, authorID string) ([]domain.Post, error)
	ListPublicPosts(ctx context.Context) ([]domain.Post, error)
	UpdatePost(ctx context.Context, authorID, postID string, input UpdatePostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, authorID, postID string) error
}

// CreatePostInput carries the fields for a new post. TagIDs is the desired
// initial membership set; every id must resolve to an existing tag.
type CreatePostInput struct {
	Title       string
	URLSlug     string
	Thumbnail   string
	Description string
	Content     string
	IsPublic    bool
	TagIDs      []string
}

// UpdatePostInput carries partial post updates; nil fields are untouched.
// A non-nil TagIDs is the full desired membership set and triggers
// reconciliation; nil leaves the association alone.
type UpdatePostInput struct {
	Title       *string
	URLSlug     *string
	Thumbnail   *string
	Description *string
	Content     *string
	IsPublic    *bool
	TagIDs      []string
}
