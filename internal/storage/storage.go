// Package storage stores uploaded cover images and hands back public URLs.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CoverPrefix is the fixed path prefix for uploaded book covers.
const CoverPrefix = "book-covers"

// Storage persists an object and returns its public URL.
type Storage interface {
	Save(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// ObjectName builds a collision-resistant file name from the upload time, a
// random suffix and the original extension.
func ObjectName(ext string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, strings.ToLower(ext))
}

// ContentTypeForExt maps an accepted cover extension to its MIME type.
func ContentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
