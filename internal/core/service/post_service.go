package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/portfolio-site/blog-api/internal/api/metrics"
	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
)

// PostService implements post CRUD and the post↔tag set reconciliation.
type PostService struct {
	posts  ports.PostRepository
	tags   ports.TagRepository
	tx     ports.TxManager
	cache  ports.PostCache
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, tags ports.TagRepository, tx ports.TxManager, cache ports.PostCache, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, tags: tags, tx: tx, cache: cache, logger: logger}
}

// CreatePost inserts a post for the given author. The slug is derived from
// the title when absent; every requested tag id must resolve to an existing
// tag or the whole operation fails with domain.ErrObjectNotFound.
func (s *PostService) CreatePost(ctx context.Context, authorID string, input ports.CreatePostInput) (*domain.Post, error) {
	if input.Title == "" || input.Content == "" {
		return nil, domain.ErrBadRequest
	}
	if input.URLSlug == "" {
		input.URLSlug = slugify(input.Title)
	}

	tagIDs := dedupe(input.TagIDs)
	if err := s.resolveTags(ctx, tagIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:          uuid.NewString(),
		Title:       input.Title,
		URLSlug:     input.URLSlug,
		Thumbnail:   input.Thumbnail,
		Description: input.Description,
		Content:     input.Content,
		IsPublic:    input.IsPublic,
		AuthorID:    authorID,
		TagIDs:      tagIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.invalidatePublic(ctx)
	s.logger.Info().Str("post_id", created.ID).Int("tags", len(tagIDs)).Msg("post created")
	return created, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) ListMyPosts(ctx context.Context, authorID string) ([]domain.Post, error) {
	return s.posts.FindByAuthor(ctx, authorID)
}

// ListPublicPosts serves the public listing cache-first, falling back to the
// repository and repopulating the cache on a miss. Cache failures are logged
// and otherwise ignored.
func (s *PostService) ListPublicPosts(ctx context.Context) ([]domain.Post, error) {
	if s.cache != nil {
		posts, ok, err := s.cache.GetPublic(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("public post cache read failed")
		} else if ok {
			return posts, nil
		}
	}

	posts, err := s.posts.FindPublic(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetPublic(ctx, posts); err != nil {
			s.logger.Warn().Err(err).Msg("public post cache write failed")
		}
	}
	return posts, nil
}

// UpdatePost applies a partial update to a post owned by authorID. When
// input.TagIDs is non-nil it is treated as the full desired membership set
// and reconciled against the current one.
func (s *PostService) UpdatePost(ctx context.Context, authorID, postID string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != authorID {
		return nil, domain.ErrObjectNotFound
	}

	if input.Title != nil && *input.Title != "" {
		post.Title = *input.Title
	}
	if input.URLSlug != nil && *input.URLSlug != "" {
		post.URLSlug = *input.URLSlug
	}
	if input.Thumbnail != nil {
		post.Thumbnail = *input.Thumbnail
	}
	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.Content != nil && *input.Content != "" {
		post.Content = *input.Content
	}
	if input.IsPublic != nil {
		post.IsPublic = *input.IsPublic
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	if input.TagIDs != nil {
		if err := s.ReconcileTags(ctx, post, input.TagIDs); err != nil {
			return nil, err
		}
	}

	s.invalidatePublic(ctx)
	return post, nil
}

// ReconcileTags computes the minimal edit turning the post's current tag set
// into the desired one and applies it in a single transaction. Membership is
// matched by tag id. Removals run before additions so no transient state
// holds members outside the desired set; the intersection is untouched.
// Every id to be added must resolve first — an unresolvable id aborts the
// whole operation before any write. Applying the same desired set twice
// performs no further writes.
func (s *PostService) ReconcileTags(ctx context.Context, post *domain.Post, desiredIDs []string) error {
	desired := dedupe(desiredIDs)

	current := make(map[string]struct{}, len(post.TagIDs))
	for _, id := range post.TagIDs {
		current[id] = struct{}{}
	}
	want := make(map[string]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}

	var toAdd, toRemove []string
	for _, id := range desired {
		if _, ok := current[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range post.TagIDs {
		if _, ok := want[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	if err := s.resolveTags(ctx, toAdd); err != nil {
		metrics.TagReconciliationsTotal.WithLabelValues("error").Inc()
		return err
	}

	if len(toAdd) == 0 && len(toRemove) == 0 {
		metrics.TagReconciliationsTotal.WithLabelValues("success").Inc()
		return nil
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if len(toRemove) > 0 {
			if err := s.posts.RemoveTags(ctx, post.ID, toRemove); err != nil {
				return err
			}
		}
		if len(toAdd) > 0 {
			if err := s.posts.AddTags(ctx, post.ID, toAdd); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		metrics.TagReconciliationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.TagReconciliationsTotal.WithLabelValues("success").Inc()
	post.TagIDs = desired
	s.logger.Info().
		Str("post_id", post.ID).
		Int("added", len(toAdd)).
		Int("removed", len(toRemove)).
		Msg("tag set reconciled")
	return nil
}

// DeletePost removes a post owned by authorID.
func (s *PostService) DeletePost(ctx context.Context, authorID, postID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != authorID {
		return domain.ErrObjectNotFound
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	s.invalidatePublic(ctx)
	s.logger.Info().Str("post_id", postID).Msg("post deleted")
	return nil
}

// resolveTags verifies that every id references an existing tag.
func (s *PostService) resolveTags(ctx context.Context, tagIDs []string) error {
	for _, id := range tagIDs {
		if _, err := s.tags.FindByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostService) invalidatePublic(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePublic(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("public post cache invalidation failed")
	}
}

// dedupe collapses duplicates preserving first-seen order, so membership
// behaves as a set even when the client submits repeats.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
