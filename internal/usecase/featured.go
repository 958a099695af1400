package usecase

import (
	"context"
	"strings"

	"bookshop/internal/entity"
)

// FeaturedBookRepository defines the contract for the single highlighted
// record. The row is seeded once and only ever updated.
type FeaturedBookRepository interface {
	// GetActive returns the row with is_active = true. It returns ErrNotFound
	// when no row is active and ErrMultipleActive when more than one is.
	GetActive(ctx context.Context) (entity.FeaturedBook, error)
	Update(ctx context.Context, fb *entity.FeaturedBook) error
}

// FeaturedInput is the caller-supplied portion of the featured book.
type FeaturedInput struct {
	Title          string
	Description    string
	CoverImage     string
	Price          float64
	Features       []string
	WhatsappNumber string
}

func (in FeaturedInput) Validate() error {
	var fields []FieldError
	if strings.TrimSpace(in.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "title must not be empty"})
	}
	if strings.TrimSpace(in.Description) == "" {
		fields = append(fields, FieldError{Field: "description", Message: "description must not be empty"})
	}
	if strings.TrimSpace(in.CoverImage) == "" {
		fields = append(fields, FieldError{Field: "cover_image", Message: "cover image must not be empty"})
	}
	if in.Price <= 0 {
		fields = append(fields, FieldError{Field: "price", Message: "price must be greater than zero"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// FeaturedService reads and updates the landing-page book.
type FeaturedService struct {
	repo FeaturedBookRepository
}

func NewFeaturedService(repo FeaturedBookRepository) *FeaturedService {
	return &FeaturedService{repo: repo}
}

func (s *FeaturedService) Get(ctx context.Context) (entity.FeaturedBook, error) {
	return s.repo.GetActive(ctx)
}

// Update validates the input and rewrites the active row. The WhatsApp number
// falls back to the store default when blank, the feature list is trimmed to
// non-empty entries, and the row always stays active.
func (s *FeaturedService) Update(ctx context.Context, in FeaturedInput) (entity.FeaturedBook, error) {
	if err := in.Validate(); err != nil {
		return entity.FeaturedBook{}, err
	}

	fb, err := s.repo.GetActive(ctx)
	if err != nil {
		return entity.FeaturedBook{}, err
	}

	features := make([]string, 0, len(in.Features))
	for _, f := range in.Features {
		if t := strings.TrimSpace(f); t != "" {
			features = append(features, t)
		}
	}

	fb.Title = strings.TrimSpace(in.Title)
	fb.Description = strings.TrimSpace(in.Description)
	fb.CoverImage = strings.TrimSpace(in.CoverImage)
	fb.Price = in.Price
	fb.Features = features
	fb.WhatsappNumber = strings.TrimSpace(in.WhatsappNumber)
	if fb.WhatsappNumber == "" {
		fb.WhatsappNumber = DefaultWhatsappNumber
	}
	fb.IsActive = true

	if err := s.repo.Update(ctx, &fb); err != nil {
		return entity.FeaturedBook{}, err
	}
	return fb, nil
}
