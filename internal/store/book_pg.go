package store

import (
	"context"
	"errors"

	"bookshop/internal/entity"
	"bookshop/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookPG implements usecase.BookRepository on Postgres.
type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) List(ctx context.Context) ([]entity.Book, error) {
	const query = `
	SELECT id, title, author, cover_image, description, price, whatsapp_number, display_order, created_at, updated_at
	FROM books
	ORDER BY display_order ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.CoverImage, &b.Description, &b.Price, &b.WhatsappNumber, &b.DisplayOrder, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
	SELECT id, title, author, cover_image, description, price, whatsapp_number, display_order, created_at, updated_at
	FROM books
	WHERE id = $1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.CoverImage, &b.Description, &b.Price, &b.WhatsappNumber, &b.DisplayOrder, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	const query = `
	INSERT INTO books (title, author, cover_image, description, price, whatsapp_number, display_order, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		b.Title, b.Author, b.CoverImage, b.Description, b.Price, b.WhatsappNumber, b.DisplayOrder,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookPG) Update(ctx context.Context, b *entity.Book) error {
	const query = `
	UPDATE books
	SET title = $2, author = $3, cover_image = $4, description = $5, price = $6, whatsapp_number = $7, updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		b.ID, b.Title, b.Author, b.CoverImage, b.Description, b.Price, b.WhatsappNumber,
	).Scan(&b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	return err
}

func (r *BookPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *BookPG) MaxDisplayOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(display_order), 0) FROM books`).Scan(&max)
	return max, err
}

// SwapDisplayOrder writes both rows inside one transaction so a partial
// failure cannot leave the catalog order inconsistent.
func (r *BookPG) SwapDisplayOrder(ctx context.Context, firstID int64, firstOrder int, secondID int64, secondOrder int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const query = `UPDATE books SET display_order = $2, updated_at = NOW() WHERE id = $1`
	if _, err := tx.Exec(ctx, query, firstID, firstOrder); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, secondID, secondOrder); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
