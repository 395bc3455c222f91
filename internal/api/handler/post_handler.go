package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/blog-api/internal/core/domain"
	"github.com/portfolio-site/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post CRUD and tag membership.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Title       string   `json:"title" validate:"required"`
	URLSlug     string   `json:"url_slug,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content" validate:"required"`
	IsPublic    bool     `json:"is_public"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

type updatePostRequest struct {
	Title       *string  `json:"title,omitempty"`
	URLSlug     *string  `json:"url_slug,omitempty"`
	Thumbnail   *string  `json:"thumbnail,omitempty"`
	Description *string  `json:"description,omitempty"`
	Content     *string  `json:"content,omitempty"`
	IsPublic    *bool    `json:"is_public,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

type postResponse struct {
	Post *domain.Post `json:"post"`
}

type postListResponse struct {
	Posts []domain.Post `json:"posts"`
}

// Create stores a new post owned by the authenticated admin. Every id in
// tag_ids must resolve to an existing tag or the whole request is rejected.
func (h *PostHandler) Create(c echo.Context) error {
	adminID, err := ctxAdminID(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), adminID, ports.CreatePostInput{
		Title:       req.Title,
		URLSlug:     req.URLSlug,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		Content:     req.Content,
		IsPublic:    req.IsPublic,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, postResponse{Post: post})
}

// Get returns a single post by id.
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postResponse{Post: post})
}

// ListMine returns every post owned by the authenticated admin, public or
// not.
func (h *PostHandler) ListMine(c echo.Context) error {
	adminID, err := ctxAdminID(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListMyPosts(c.Request().Context(), adminID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postListResponse{Posts: posts})
}

// ListPublic returns the published posts visible without authentication.
func (h *PostHandler) ListPublic(c echo.Context) error {
	posts, err := h.service.ListPublicPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postListResponse{Posts: posts})
}

// Update applies a partial update to a post the admin owns. A non-nil
// tag_ids is the full desired membership set; the service reconciles the
// stored set against it.
func (h *PostHandler) Update(c echo.Context) error {
	adminID, err := ctxAdminID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.UpdatePost(c.Request().Context(), adminID, c.Param("id"), ports.UpdatePostInput{
		Title:       req.Title,
		URLSlug:     req.URLSlug,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		Content:     req.Content,
		IsPublic:    req.IsPublic,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postResponse{Post: post})
}

// Delete removes a post the admin owns.
func (h *PostHandler) Delete(c echo.Context) error {
	adminID, err := ctxAdminID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePost(c.Request().Context(), adminID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
