// Package service содержит бизнес-логику приложения (record-book).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/config"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users   UsersRepo
	Records RecordsRepo
	Tokens  TokensRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth    *AuthService
	Records *RecordsService
	Tokens  *TokenService
}

// NewServices собирает все сервисы приложения.
// cfg нужен TokenService (JWT) и AuthService (параметры хеширования пароля).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	tokens := NewTokenService(repos.Tokens, cfg)
	return &Services{
		Auth:    NewAuthService(repos.Users, tokens, cfg),
		Records: NewRecordsService(repos.Records),
		Tokens:  tokens,
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/register/login/me).
type UsersRepo interface {
	Create(ctx context.Context, name, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// RecordsRepo — репозиторий учебных записей (CRUD).
type RecordsRepo interface {
	List(ctx context.Context) ([]models.Record, error)
	Create(ctx context.Context, name, course, email, phone string) (models.Record, error)
	GetByID(ctx context.Context, id int64) (models.Record, error)
	Update(ctx context.Context, id int64, name, course, email, phone string) error
	Delete(ctx context.Context, id int64) error
}

// TokensRepo — хранилище отозванных access-токенов (по jti).
type TokensRepo interface {
	Revoke(ctx context.Context, jti uuid.UUID, expiresAt time.Time) (bool, error)
	IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
