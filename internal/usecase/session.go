package usecase

import (
	"context"

	"bookshop/internal/entity"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (entity.Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	CleanupExpired(ctx context.Context) error
}
