package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create вставляет нового пользователя.
//
// Уникальность email обеспечивает сама база (unique constraint):
// нарушение 23505 превращается в ErrAlreadyExists, и выше по стеку
// это подаётся клиенту как ошибка валидации email, а не как 500.
func (r *UsersRepository) Create(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1,$2,$3)
		 RETURNING id, created_at`,
		name, email, passwordHash,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return models.User{}, serr.ErrAlreadyExists
			}
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}
