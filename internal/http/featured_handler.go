package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshop/internal/usecase"
)

type FeaturedHandler struct {
	svc *usecase.FeaturedService
}

func NewFeaturedHandler(svc *usecase.FeaturedService) *FeaturedHandler {
	return &FeaturedHandler{svc: svc}
}

// Get returns the active featured book. Public route.
func (h *FeaturedHandler) Get(w http.ResponseWriter, r *http.Request) {
	fb, err := h.svc.Get(r.Context())
	if err != nil {
		writeFeaturedError(w, err)
		return
	}
	JSONSuccess(w, fb, nil)
}

type featuredReq struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	CoverImage     string   `json:"cover_image"`
	Price          float64  `json:"price"`
	Features       []string `json:"features"`
	WhatsappNumber string   `json:"whatsapp_number"`
}

func (h *FeaturedHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req featuredReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	fb, err := h.svc.Update(r.Context(), usecase.FeaturedInput{
		Title:          req.Title,
		Description:    req.Description,
		CoverImage:     req.CoverImage,
		Price:          req.Price,
		Features:       req.Features,
		WhatsappNumber: req.WhatsappNumber,
	})
	if err != nil {
		if ve, ok := usecase.AsValidationError(err); ok {
			JSONValidationError(w, ve)
			return
		}
		writeFeaturedError(w, err)
		return
	}
	JSONSuccess(w, fb, nil)
}

func writeFeaturedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "No featured book configured", nil)
	case errors.Is(err, usecase.ErrMultipleActive):
		JSONError(w, http.StatusConflict, "DATA_INTEGRITY", "More than one featured book is active", nil)
	default:
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
