package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

// TokensRepository хранит отозванные access-токены (по jti).
//
// Используется для:
//   - logout (Revoke)
//   - single-use refresh (старый jti «забирается» ровно один раз)
//   - проверки токена в middleware (IsRevoked)
//
// Строки живут не дольше exp самого токена: DeleteExpired периодически
// подчищает таблицу, поэтому её размер ограничен числом живых токенов.
type TokensRepository struct {
	db *sql.DB
}

func NewTokensRepository(db *sql.DB) *TokensRepository {
	return &TokensRepository{db: db}
}

// Revoke помечает jti отозванным.
//
// Возвращает true, если jti был отозван именно этим вызовом (claimed),
// и false, если он уже был в таблице. На этом построено разрешение гонки
// refresh/revoke: из двух конкурентных операций старый jti достаётся
// ровно одной.
func (r *TokensRepository) Revoke(ctx context.Context, jti uuid.UUID, expiresAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO revoked_tokens (jti, expires_at)
		 VALUES ($1,$2)
		 ON CONFLICT (jti) DO NOTHING`,
		jti, expiresAt,
	)
	if err != nil {
		return false, serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, serr.ErrInternal
	}
	return n == 1, nil
}

// IsRevoked проверяет, отозван ли jti.
func (r *TokensRepository) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	var revoked bool

	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE jti=$1)`,
		jti,
	).Scan(&revoked)
	if err != nil {
		return false, serr.ErrInternal
	}

	return revoked, nil
}

// DeleteExpired удаляет записи об отзыве токенов, которые и так уже истекли.
//
// Возвращает количество удалённых строк.
func (r *TokensRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM revoked_tokens WHERE expires_at < $1`,
		now,
	)
	if err != nil {
		return 0, serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, serr.ErrInternal
	}
	return n, nil
}
