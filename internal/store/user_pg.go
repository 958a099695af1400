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

// UserPG implements usecase.UserRepository on Postgres.
type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

func (r *UserPG) Create(ctx context.Context, u *entity.User) error {
	const query = `
	INSERT INTO users (id, username, email, password, role, created_at, updated_at)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
	RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, u.Username, u.Email, u.Password, u.Role).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usecase.ErrAlreadyExists
	}
	return err
}

func (r *UserPG) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	const query = `
	SELECT id, username, email, password, role, created_at, updated_at
	FROM users
	WHERE email = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *UserPG) GetByID(ctx context.Context, id string) (entity.User, error) {
	const query = `
	SELECT id, username, email, password, role, created_at, updated_at
	FROM users
	WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *UserPG) scanOne(row pgx.Row) (entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}
