package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
)

// TagService implements tag CRUD. Deleting a tag also detaches it from
// every referencing post, so the association never holds dangling ids.
type TagService struct {
	repo   ports.TagRepository
	posts  ports.PostRepository
	tx     ports.TxManager
	cache  ports.PostCache
	logger zerolog.Logger
}

func NewTagService(repo ports.TagRepository, posts ports.PostRepository, tx ports.TxManager, cache ports.PostCache, logger zerolog.Logger) *TagService {
	return &TagService{repo: repo, posts: posts, tx: tx, cache: cache, logger: logger}
}

// CreateTag inserts a tag, deriving the slug from the title when absent.
// A duplicate title fails with domain.ErrAlreadyRegistered.
func (s *TagService) CreateTag(ctx context.Context, title, slug string) (*domain.Tag, error) {
	if title == "" {
		return nil, domain.ErrBadRequest
	}
	if slug == "" {
		slug = slugify(title)
	}

	now := time.Now().UTC()
	tag := &domain.Tag{
		ID:        uuid.NewString(),
		Title:     title,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, tag)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("tag_id", created.ID).Str("title", created.Title).Msg("tag created")
	return created, nil
}

func (s *TagService) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.repo.FindAll(ctx)
}

// UpdateTag applies a partial update; nil fields are untouched.
func (s *TagService) UpdateTag(ctx context.Context, id string, title, slug *string) (*domain.Tag, error) {
	tag, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != nil && *title != "" {
		tag.Title = *title
	}
	if slug != nil && *slug != "" {
		tag.Slug = *slug
	}
	tag.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes the tag and strips its id from every referencing post
// in the same transaction, so no post is ever left holding an id that
// resolves to nothing.
func (s *TagService) DeleteTag(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.posts.RemoveTagFromAll(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidatePublic(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("public post cache invalidation failed")
		}
	}
	s.logger.Info().Str("tag_id", id).Msg("tag deleted")
	return nil
}
