package usecase

import (
	"context"
	"regexp"
	"strings"

	"bookshop/internal/entity"
)

type BlogRepository interface {
	// ListPublished returns published posts, newest first.
	ListPublished(ctx context.Context) ([]entity.Blog, error)
	GetBySlug(ctx context.Context, slug string) (entity.Blog, error)
	Create(ctx context.Context, b *entity.Blog) error
	Update(ctx context.Context, b *entity.Blog) error
	Delete(ctx context.Context, id int64) error
}

var slugStrip = regexp.MustCompile(`[^a-z0-9\s]`)
var slugSpaces = regexp.MustCompile(`\s+`)

// Slugify derives a URL slug from a post title: lowercase, alphanumerics
// only, spaces collapsed to hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(strings.TrimSpace(s), "-")
	return s
}
