package store

import (
	"context"
	"errors"

	"bookshop/internal/entity"
	"bookshop/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BlogPG implements usecase.BlogRepository on Postgres.
type BlogPG struct {
	db *pgxpool.Pool
}

func NewBlogPG(db *pgxpool.Pool) *BlogPG {
	return &BlogPG{db: db}
}

const blogColumns = `id, title, slug, content, tags, cover_image, status, author_id, created_at, updated_at`

func (r *BlogPG) ListPublished(ctx context.Context) ([]entity.Blog, error) {
	query := `
	SELECT ` + blogColumns + `
	FROM blogs
	WHERE status = 'published'
	ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []entity.Blog
	for rows.Next() {
		var b entity.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Slug, &b.Content, &b.Tags, &b.CoverImage, &b.Status, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *BlogPG) GetBySlug(ctx context.Context, slug string) (entity.Blog, error) {
	query := `
	SELECT ` + blogColumns + `
	FROM blogs
	WHERE slug = $1
	`
	var b entity.Blog
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&b.ID, &b.Title, &b.Slug, &b.Content, &b.Tags, &b.CoverImage, &b.Status, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Blog{}, usecase.ErrNotFound
		}
		return entity.Blog{}, err
	}
	return b, nil
}

func (r *BlogPG) Create(ctx context.Context, b *entity.Blog) error {
	const query = `
	INSERT INTO blogs (title, slug, content, tags, cover_image, status, author_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		b.Title, b.Slug, b.Content, b.Tags, b.CoverImage, b.Status, b.AuthorID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usecase.ErrAlreadyExists
	}
	return err
}

func (r *BlogPG) Update(ctx context.Context, b *entity.Blog) error {
	const query = `
	UPDATE blogs
	SET title = $2, slug = $3, content = $4, tags = $5, cover_image = $6, status = $7, updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		b.ID, b.Title, b.Slug, b.Content, b.Tags, b.CoverImage, b.Status,
	).Scan(&b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return usecase.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usecase.ErrAlreadyExists
	}
	return err
}

func (r *BlogPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
