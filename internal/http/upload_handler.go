package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"bookshop/internal/platform/images"
	"bookshop/internal/storage"
)

// MaxUploadBytes caps cover uploads at 5 MiB, measured on the raw file.
const MaxUploadBytes = 5 << 20

type UploadHandler struct {
	store storage.Storage
}

func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts a multipart "file" field, normalizes the image to the cover
// canvas and stores it under a name that cannot collide with earlier uploads.
// The response carries the public URL of the stored file.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Headroom for multipart framing so the size check below sees the file,
	// not a truncated read.
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes+1024*1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		// A body big enough to trip the reader cap is a size problem, not a
		// missing file.
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "File size must be less than 5MB", nil)
			return
		}
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "No file uploaded", nil)
		return
	}
	defer file.Close()

	if header.Size > MaxUploadBytes {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "File size must be less than 5MB", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !images.IsSupportedExt(ext) {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid file type. Only JPG, PNG and WebP are allowed", nil)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if len(data) > MaxUploadBytes {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "File size must be less than 5MB", nil)
		return
	}

	processed, err := images.Process(data, ext)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "File is not a valid image: "+err.Error(), nil)
		return
	}

	objectPath := storage.CoverPrefix + "/" + storage.ObjectName(ext)
	url, err := h.store.Save(r.Context(), objectPath, processed, storage.ContentTypeForExt(ext))
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store file: "+err.Error(), nil)
		return
	}

	JSONSuccess(w, map[string]string{"url": url}, nil)
}
