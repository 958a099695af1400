package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookshop/internal/usecase"
)

type BookHandler struct {
	svc *usecase.CatalogService
}

func NewBookHandler(svc *usecase.CatalogService) *BookHandler {
	return &BookHandler{svc: svc}
}

type bookReq struct {
	Title          string  `json:"title"`
	Author         string  `json:"author"`
	CoverImage     string  `json:"cover_image"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	WhatsappNumber string  `json:"whatsapp_number"`
}

func (req bookReq) toInput() usecase.BookInput {
	return usecase.BookInput{
		Title:          req.Title,
		Author:         req.Author,
		CoverImage:     req.CoverImage,
		Description:    req.Description,
		Price:          req.Price,
		WhatsappNumber: req.WhatsappNumber,
	}
}

// List returns the whole catalog ordered for display. Public route.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, books, map[string]any{"count": len(books)})
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r, "/books/")
	if !ok {
		return
	}

	book, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, book, nil)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	book, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		if ve, ok := usecase.AsValidationError(err); ok {
			JSONValidationError(w, ve)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccessCreated(w, book)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r, "/admin/books/")
	if !ok {
		return
	}

	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	book, err := h.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			if ve, ok := usecase.AsValidationError(err); ok {
				JSONValidationError(w, ve)
				return
			}
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	JSONSuccess(w, book, nil)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r, "/admin/books/")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccessNoContent(w)
}

type reorderReq struct {
	Direction string `json:"direction" validate:"required,direction"`
}

// Reorder moves a book one position up or down. A move past either end of
// the catalog succeeds without changing anything.
func (h *BookHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	id, ok := bookID(w, r, "/admin/books/")
	if !ok {
		return
	}

	var req reorderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
		return
	}

	if err := h.svc.Reorder(r.Context(), id, usecase.Direction(req.Direction)); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	books, err := h.svc.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, books, nil)
}

// bookID extracts the numeric id segment following prefix. The reorder route
// carries a trailing "/reorder" which is dropped before parsing.
func bookID(w http.ResponseWriter, r *http.Request, prefix string) (int64, bool) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	raw = strings.TrimSuffix(raw, "/reorder")
	if raw == "" || strings.Contains(raw, "/") {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return 0, false
	}
	return id, true
}
