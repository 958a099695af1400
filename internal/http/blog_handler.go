package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookshop/internal/entity"
	"bookshop/internal/usecase"
)

type BlogHandler struct {
	repo usecase.BlogRepository
}

func NewBlogHandler(repo usecase.BlogRepository) *BlogHandler {
	return &BlogHandler{repo: repo}
}

// List returns published posts, newest first. Public route.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.repo.ListPublished(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, blogs, map[string]any{"count": len(blogs)})
}

// Get looks a post up by slug. Drafts stay hidden on the public route.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/blogs/")
	if slug == "" || strings.Contains(slug, "/") {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Post not found", nil)
		return
	}

	blog, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Post not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if blog.Status != entity.BlogStatusPublished {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Post not found", nil)
		return
	}
	JSONSuccess(w, blog, nil)
}

type blogReq struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Tags       []string `json:"tags"`
	CoverImage *string  `json:"cover_image"`
	Status     string   `json:"status" validate:"required,oneof=draft published"`
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req blogReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
		return
	}

	blog := entity.Blog{
		Title:      strings.TrimSpace(req.Title),
		Slug:       usecase.Slugify(req.Title),
		Content:    req.Content,
		Tags:       req.Tags,
		CoverImage: req.CoverImage,
		Status:     req.Status,
		AuthorID:   UserIDFrom(r),
	}
	if err := h.repo.Create(r.Context(), &blog); err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "A post with this title already exists", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccessCreated(w, blog)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := blogID(w, r)
	if !ok {
		return
	}

	var req blogReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
		return
	}

	blog := entity.Blog{
		ID:         id,
		Title:      strings.TrimSpace(req.Title),
		Slug:       usecase.Slugify(req.Title),
		Content:    req.Content,
		Tags:       req.Tags,
		CoverImage: req.CoverImage,
		Status:     req.Status,
		AuthorID:   UserIDFrom(r),
	}
	if err := h.repo.Update(r.Context(), &blog); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Post not found", nil)
		case errors.Is(err, usecase.ErrAlreadyExists):
			JSONError(w, http.StatusConflict, "ALREADY_EXISTS", "A post with this title already exists", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	JSONSuccess(w, blog, nil)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := blogID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Post not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccessNoContent(w)
}

func blogID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimPrefix(r.URL.Path, "/admin/blogs/")
	if raw == "" || strings.Contains(raw, "/") {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Post not found", nil)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid post id", nil)
		return 0, false
	}
	return id, true
}
