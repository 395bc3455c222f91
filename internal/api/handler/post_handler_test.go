package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
)

type stubPostService struct {
	post      *domain.Post
	posts     []domain.Post
	err       error
	created   *ports.CreatePostInput
	updated   *ports.UpdatePostInput
	updatedID string
	deletedID string
}

func (s *stubPostService) CreatePost(ctx context.Context, authorID string, input ports.CreatePostInput) (*domain.Post, error) {
	s.created = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.post, nil
}

func (s *stubPostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.post, nil
}

func (s *stubPostService) ListMyPosts(ctx context.Context, authorID string) ([]domain.Post, error) {
	return s.posts, s.err
}

func (s *stubPostService) ListPublicPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts, s.err
}

func (s *stubPostService) UpdatePost(ctx context.Context, authorID, postID string, input ports.UpdatePostInput) (*domain.Post, error) {
	s.updatedID = postID
	s.updated = &input
	if s.err != nil {
		return nil, s.err
	}
	return s.post, nil
}

func (s *stubPostService) DeletePost(ctx context.Context, authorID, postID string) error {
	s.deletedID = postID
	return s.err
}

func TestPostHandler_Create(t *testing.T) {
	svc := &stubPostService{post: &domain.Post{ID: "post-1", Title: "Hello"}}
	h := NewPostHandler(svc)
	c, rec := newTestContext(http.MethodPost, "/posts", `{"title":"Hello","content":"body","tag_ids":["tag-1"]}`)
	c.Set("admin_id", "admin-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.created == nil || len(svc.created.TagIDs) != 1 || svc.created.TagIDs[0] != "tag-1" {
		t.Fatalf("expected tag ids forwarded, got %+v", svc.created)
	}
}

func TestPostHandler_CreateRequiresAuth(t *testing.T) {
	h := NewPostHandler(&stubPostService{})
	c, _ := newTestContext(http.MethodPost, "/posts", `{"title":"Hello","content":"body"}`)

	err := h.Create(c)
	if !errors.Is(err, domain.ErrUnauthorizedAdmin) {
		t.Fatalf("expected ErrUnauthorizedAdmin, got %v", err)
	}
}

func TestPostHandler_CreateValidation(t *testing.T) {
	h := NewPostHandler(&stubPostService{})
	c, _ := newTestContext(http.MethodPost, "/posts", `{"title":"Hello"}`)
	c.Set("admin_id", "admin-1")

	err := h.Create(c)
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest without content, got %v", err)
	}
}

func TestPostHandler_GetNotFound(t *testing.T) {
	h := NewPostHandler(&stubPostService{err: domain.ErrObjectNotFound})
	c, _ := newTestContext(http.MethodGet, "/posts/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Get(c)
	if !errors.Is(err, domain.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestPostHandler_ListPublic(t *testing.T) {
	svc := &stubPostService{posts: []domain.Post{{ID: "post-1", Title: "Hello", IsPublic: true}}}
	h := NewPostHandler(svc)
	c, rec := newTestContext(http.MethodGet, "/posts/public", "")

	if err := h.ListPublic(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(rec.Body.String(), "post-1") {
		t.Fatalf("expected posts in body, got %s", rec.Body.String())
	}
}

func TestPostHandler_UpdateForwardsTagSet(t *testing.T) {
	svc := &stubPostService{post: &domain.Post{ID: "post-1"}}
	h := NewPostHandler(svc)
	c, _ := newTestContext(http.MethodPut, "/posts/post-1", `{"tag_ids":["tag-1","tag-2"]}`)
	c.SetParamNames("id")
	c.SetParamValues("post-1")
	c.Set("admin_id", "admin-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if svc.updatedID != "post-1" {
		t.Fatalf("expected update for post-1, got %q", svc.updatedID)
	}
	if svc.updated == nil || len(svc.updated.TagIDs) != 2 {
		t.Fatalf("expected full desired tag set forwarded, got %+v", svc.updated)
	}
	if svc.updated.Title != nil {
		t.Fatalf("omitted fields must stay nil, got title %v", *svc.updated.Title)
	}
}

func TestPostHandler_UpdateOmittedTagsStayNil(t *testing.T) {
	svc := &stubPostService{post: &domain.Post{ID: "post-1"}}
	h := NewPostHandler(svc)
	c, _ := newTestContext(http.MethodPut, "/posts/post-1", `{"title":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("post-1")
	c.Set("admin_id", "admin-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if svc.updated.TagIDs != nil {
		t.Fatalf("tag_ids omitted must stay nil, got %v", svc.updated.TagIDs)
	}
}

func TestPostHandler_Delete(t *testing.T) {
	svc := &stubPostService{}
	h := NewPostHandler(svc)
	c, rec := newTestContext(http.MethodDelete, "/posts/post-1", "")
	c.SetParamNames("id")
	c.SetParamValues("post-1")
	c.Set("admin_id", "admin-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.deletedID != "post-1" {
		t.Fatalf("expected delete for post-1, got %q", svc.deletedID)
	}
}
