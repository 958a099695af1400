package usecase

import (
	"context"
	"strings"

	"bookshop/internal/entity"
)

// DefaultWhatsappNumber is the store's contact number, used whenever a record
// is saved without one.
const DefaultWhatsappNumber = "+994504540738"

// MaxDescriptionLength caps book descriptions so they fit the catalog cards.
const MaxDescriptionLength = 130

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// BookRepository defines the contract for catalog storage.
type BookRepository interface {
	// List returns all books ordered by display_order ascending.
	List(ctx context.Context) ([]entity.Book, error)
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	Create(ctx context.Context, b *entity.Book) error
	Update(ctx context.Context, b *entity.Book) error
	Delete(ctx context.Context, id int64) error
	// MaxDisplayOrder returns the highest display_order, 0 for an empty catalog.
	MaxDisplayOrder(ctx context.Context) (int, error)
	// SwapDisplayOrder persists new orders for two rows in one transaction.
	SwapDisplayOrder(ctx context.Context, firstID int64, firstOrder int, secondID int64, secondOrder int) error
}

// BookInput is the caller-supplied portion of a book record.
type BookInput struct {
	Title          string
	Author         string
	CoverImage     string
	Description    string
	Price          float64
	WhatsappNumber string
}

// Validate checks the input locally. Shared by the create and update paths so
// both reject bad records before any store call.
func (in BookInput) Validate() error {
	var fields []FieldError
	if strings.TrimSpace(in.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "title must not be empty"})
	}
	if strings.TrimSpace(in.Author) == "" {
		fields = append(fields, FieldError{Field: "author", Message: "author must not be empty"})
	}
	if strings.TrimSpace(in.Description) == "" {
		fields = append(fields, FieldError{Field: "description", Message: "description must not be empty"})
	}
	if len([]rune(in.Description)) > MaxDescriptionLength {
		fields = append(fields, FieldError{Field: "description", Message: "description must be at most 130 characters"})
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

// CatalogService provides the admin-facing book operations.
type CatalogService struct {
	repo BookRepository
}

func NewCatalogService(repo BookRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(ctx context.Context) ([]entity.Book, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id int64) (entity.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input and appends the book to the end of the catalog:
// display_order becomes max(existing)+1, or 1 when the catalog is empty.
func (s *CatalogService) Create(ctx context.Context, in BookInput) (entity.Book, error) {
	if err := in.Validate(); err != nil {
		return entity.Book{}, err
	}

	maxOrder, err := s.repo.MaxDisplayOrder(ctx)
	if err != nil {
		return entity.Book{}, err
	}

	b := entity.Book{
		Title:          strings.TrimSpace(in.Title),
		Author:         strings.TrimSpace(in.Author),
		CoverImage:     strings.TrimSpace(in.CoverImage),
		Description:    strings.TrimSpace(in.Description),
		Price:          in.Price,
		WhatsappNumber: strings.TrimSpace(in.WhatsappNumber),
		DisplayOrder:   maxOrder + 1,
	}
	if b.WhatsappNumber == "" {
		b.WhatsappNumber = DefaultWhatsappNumber
	}

	if err := s.repo.Create(ctx, &b); err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

// Update replaces all caller-editable fields of an existing book.
func (s *CatalogService) Update(ctx context.Context, id int64, in BookInput) (entity.Book, error) {
	if err := in.Validate(); err != nil {
		return entity.Book{}, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Book{}, err
	}

	b.Title = strings.TrimSpace(in.Title)
	b.Author = strings.TrimSpace(in.Author)
	b.CoverImage = strings.TrimSpace(in.CoverImage)
	b.Description = strings.TrimSpace(in.Description)
	b.Price = in.Price
	b.WhatsappNumber = strings.TrimSpace(in.WhatsappNumber)
	if b.WhatsappNumber == "" {
		b.WhatsappNumber = DefaultWhatsappNumber
	}

	if err := s.repo.Update(ctx, &b); err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Reorder swaps the book's display_order with its neighbor in the given
// direction. Moving the first book up or the last book down is a silent
// no-op. Both rows are written in one transaction.
func (s *CatalogService) Reorder(ctx context.Context, id int64, dir Direction) error {
	books, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, b := range books {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	var other int
	switch {
	case dir == DirectionUp && idx > 0:
		other = idx - 1
	case dir == DirectionDown && idx < len(books)-1:
		other = idx + 1
	default:
		return nil
	}

	cur, nb := books[idx], books[other]
	return s.repo.SwapDisplayOrder(ctx, cur.ID, nb.DisplayOrder, nb.ID, cur.DisplayOrder)
}
