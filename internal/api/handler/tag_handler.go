package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
)

// TagHandler handles HTTP requests for tag CRUD.
type TagHandler struct {
	service ports.TagService
}

func NewTagHandler(service ports.TagService) *TagHandler {
	return &TagHandler{service: service}
}

type createTagRequest struct {
	Title string `json:"title" validate:"required"`
	Slug  string `json:"slug,omitempty"`
}

type updateTagRequest struct {
	Title *string `json:"title,omitempty"`
	Slug  *string `json:"slug,omitempty"`
}

type tagResponse struct {
	Tag *domain.Tag `json:"tag"`
}

type tagListResponse struct {
	Tags []domain.Tag `json:"tags"`
}

// Create stores a new tag. The slug is derived from the title when omitted.
func (h *TagHandler) Create(c echo.Context) error {
	var req createTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tag, err := h.service.CreateTag(c.Request().Context(), req.Title, req.Slug)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tagResponse{Tag: tag})
}

// Get returns a single tag by id.
func (h *TagHandler) Get(c echo.Context) error {
	tag, err := h.service.GetTag(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tagResponse{Tag: tag})
}

// List returns every tag.
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.service.ListTags(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tagListResponse{Tags: tags})
}

// Update applies a partial update to a tag.
func (h *TagHandler) Update(c echo.Context) error {
	var req updateTagRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	tag, err := h.service.UpdateTag(c.Request().Context(), c.Param("id"), req.Title, req.Slug)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tagResponse{Tag: tag})
}

// Delete removes a tag.
func (h *TagHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteTag(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
