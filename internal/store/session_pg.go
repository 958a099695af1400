package store

import (
	"context"
	"errors"

	"bookshop/internal/entity"
	"bookshop/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionPG implements usecase.SessionRepository on Postgres.
type SessionPG struct {
	db *pgxpool.Pool
}

func NewSessionPG(db *pgxpool.Pool) *SessionPG {
	return &SessionPG{db: db}
}

func (r *SessionPG) Create(ctx context.Context, s *entity.Session) error {
	const query = `
	INSERT INTO sessions (id, user_id, refresh_token_hash, user_agent, ip_address, remember_me, expires_at, created_at, last_used_at)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
	RETURNING id, created_at, last_used_at
	`
	return r.db.QueryRow(ctx, query,
		s.UserID, s.RefreshTokenHash, s.UserAgent, s.IPAddress, s.RememberMe, s.ExpiresAt,
	).Scan(&s.ID, &s.CreatedAt, &s.LastUsedAt)
}

func (r *SessionPG) GetByTokenHash(ctx context.Context, tokenHash string) (entity.Session, error) {
	const query = `
	SELECT id, user_id, refresh_token_hash, user_agent, ip_address, remember_me, expires_at, created_at, last_used_at
	FROM sessions
	WHERE refresh_token_hash = $1 AND expires_at > NOW()
	`
	var s entity.Session
	err := r.db.QueryRow(ctx, query, tokenHash).Scan(
		&s.ID, &s.UserID, &s.RefreshTokenHash, &s.UserAgent, &s.IPAddress, &s.RememberMe, &s.ExpiresAt, &s.CreatedAt, &s.LastUsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Session{}, usecase.ErrNotFound
		}
		return entity.Session{}, err
	}
	return s, nil
}

func (r *SessionPG) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE refresh_token_hash = $1`, tokenHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *SessionPG) CleanupExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= NOW()`)
	return err
}
