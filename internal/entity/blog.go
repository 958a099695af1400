package entity

import "time"

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

type Blog struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	CoverImage *string   `json:"cover_image,omitempty"`
	Status     string    `json:"status"`
	AuthorID   string    `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
