package store

import (
	"context"

	"bookshop/internal/entity"
	"bookshop/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FeaturedPG implements usecase.FeaturedBookRepository on Postgres.
type FeaturedPG struct {
	db *pgxpool.Pool
}

func NewFeaturedPG(db *pgxpool.Pool) *FeaturedPG {
	return &FeaturedPG{db: db}
}

// GetActive expects exactly one active row. Selecting two is enough to tell
// "exactly one" apart from "too many" without counting the whole table.
func (r *FeaturedPG) GetActive(ctx context.Context) (entity.FeaturedBook, error) {
	const query = `
	SELECT id, title, description, cover_image, price, features, whatsapp_number, is_active
	FROM featured_books
	WHERE is_active = true
	LIMIT 2
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return entity.FeaturedBook{}, err
	}
	defer rows.Close()

	var matches []entity.FeaturedBook
	for rows.Next() {
		var fb entity.FeaturedBook
		if err := rows.Scan(&fb.ID, &fb.Title, &fb.Description, &fb.CoverImage, &fb.Price, &fb.Features, &fb.WhatsappNumber, &fb.IsActive); err != nil {
			return entity.FeaturedBook{}, err
		}
		matches = append(matches, fb)
	}
	if err := rows.Err(); err != nil {
		return entity.FeaturedBook{}, err
	}

	switch len(matches) {
	case 0:
		return entity.FeaturedBook{}, usecase.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return entity.FeaturedBook{}, usecase.ErrMultipleActive
	}
}

func (r *FeaturedPG) Update(ctx context.Context, fb *entity.FeaturedBook) error {
	const query = `
	UPDATE featured_books
	SET title = $2, description = $3, cover_image = $4, price = $5, features = $6, whatsapp_number = $7, is_active = $8
	WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		fb.ID, fb.Title, fb.Description, fb.CoverImage, fb.Price, fb.Features, fb.WhatsappNumber, fb.IsActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
