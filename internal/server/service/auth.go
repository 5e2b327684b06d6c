package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/config"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/models"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (хэширование пароля, уникальность email)
//   - аутентификация (логин) и выпуск access-токена
//   - выдача данных текущего пользователя (me)
//
// Форматные правила полей (required/email/min и т.д.) проверяет api слой
// через пакет validation; здесь остаётся только то, что требует похода
// в хранилище.
type AuthService struct {
	users  UsersRepo
	tokens *TokenService

	pass crypto.PasswordParams
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, tokens *TokenService, cfg *config.Config) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		pass: crypto.PasswordParams{
			Hasher:     strings.ToLower(cfg.Password.Hasher),
			BcryptCost: cfg.Password.Bcrypt.Cost,
			Argon2: crypto.Argon2Params{
				Time:      cfg.Password.Argon2.Time,
				MemoryKiB: cfg.Password.Argon2.MemoryKiB,
				Threads:   cfg.Password.Argon2.Threads,
				KeyLen:    cfg.Password.Argon2.KeyLen,
				SaltLen:   cfg.Password.Argon2.SaltLen,
			},
		},
	}
}

// Register регистрирует нового пользователя.
//
// Поведение:
//   - email нормализуется (trim + lower);
//   - занятость email проверяется до вставки, но авторитет — unique
//     constraint в базе: нарушение при конкурентной регистрации с тем же
//     email тоже превращается в ошибку валидации, а не в 500;
//   - пароль сохраняется только в виде хэша.
//
// Возвращает созданного пользователя (без каких-либо следов пароля
// в сериализации) либо validation.Errors с сообщением по полю email.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return models.User{}, validation.Errors{"email": {validation.MsgEmailTaken}}
	}
	if !errors.Is(err, serr.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return models.User{}, serr.ErrInternal
	}

	user, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		// проиграли гонку за email — для клиента это та же ошибка валидации
		if errors.Is(err, serr.ErrAlreadyExists) {
			return models.User{}, validation.Errors{"email": {validation.MsgEmailTaken}}
		}
		return models.User{}, err
	}

	return user, nil
}

// Login аутентифицирует пользователя и выдаёт access-токен.
//
// Поведение:
//   - не раскрывает факт существования email (несуществующий email и
//     неверный пароль дают одинаковый ErrInvalidCredentials)
//
// Возвращает пользователя, токен и expires_in (секунды).
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, int64, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, "", 0, serr.ErrInvalidCredentials
		}
		return models.User{}, "", 0, err
	}

	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return models.User{}, "", 0, serr.ErrInternal
	}
	if !ok {
		return models.User{}, "", 0, serr.ErrInvalidCredentials
	}

	token, expiresIn, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", 0, err
	}

	return user, token, expiresIn, nil
}

// Me возвращает пользователя по его id (субъект access-токена).
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return s.users.GetByID(ctx, userID)
}
