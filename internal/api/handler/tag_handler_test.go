package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

type stubTagService struct {
	tag       *domain.Tag
	tags      []domain.Tag
	err       error
	created   [2]string
	deletedID string
}

func (s *stubTagService) CreateTag(ctx context.Context, title, slug string) (*domain.Tag, error) {
	s.created = [2]string{title, slug}
	if s.err != nil {
		return nil, s.err
	}
	return s.tag, nil
}

func (s *stubTagService) GetTag(ctx context.Context, id string) (*domain.Tag, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tag, nil
}

func (s *stubTagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tags, s.err
}

func (s *stubTagService) UpdateTag(ctx context.Context, id string, title, slug *string) (*domain.Tag, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tag, nil
}

func (s *stubTagService) DeleteTag(ctx context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func TestTagHandler_Create(t *testing.T) {
	svc := &stubTagService{tag: &domain.Tag{ID: "tag-1", Title: "React.js", Slug: "react-js"}}
	h := NewTagHandler(svc)
	c, rec := newTestContext(http.MethodPost, "/tags", `{"title":"React.js"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.created[0] != "React.js" || svc.created[1] != "" {
		t.Fatalf("unexpected create args: %v", svc.created)
	}
}

func TestTagHandler_CreateValidation(t *testing.T) {
	h := NewTagHandler(&stubTagService{})
	c, _ := newTestContext(http.MethodPost, "/tags", `{}`)

	err := h.Create(c)
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest without title, got %v", err)
	}
}

func TestTagHandler_CreateDuplicate(t *testing.T) {
	h := NewTagHandler(&stubTagService{err: domain.ErrAlreadyRegistered})
	c, _ := newTestContext(http.MethodPost, "/tags", `{"title":"React.js"}`)

	err := h.Create(c)
	if !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestTagHandler_List(t *testing.T) {
	svc := &stubTagService{tags: []domain.Tag{{ID: "tag-1", Title: "Python"}, {ID: "tag-2", Title: "React.js"}}}
	h := NewTagHandler(svc)
	c, rec := newTestContext(http.MethodGet, "/tags", "")

	if err := h.List(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Python") || !strings.Contains(rec.Body.String(), "React.js") {
		t.Fatalf("expected tags in body, got %s", rec.Body.String())
	}
}

func TestTagHandler_Delete(t *testing.T) {
	svc := &stubTagService{}
	h := NewTagHandler(svc)
	c, rec := newTestContext(http.MethodDelete, "/tags/tag-1", "")
	c.SetParamNames("id")
	c.SetParamValues("tag-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if svc.deletedID != "tag-1" {
		t.Fatalf("expected delete for tag-1, got %q", svc.deletedID)
	}
}
