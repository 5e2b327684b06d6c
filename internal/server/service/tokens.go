package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/config"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

// TokenService выпускает, проверяет, обновляет и отзывает bearer-токены.
//
// Ответственность:
//   - выпуск access-токенов (JWT HS256 с jti)
//   - проверка токена (подпись + срок + не отозван ли jti)
//   - refresh: новый токен взамен старого, старый отзывается (single-use)
//   - отзыв токена при logout
//
// Отзыв хранится в TokensRepo по jti до exp токена + grace-окно,
// поэтому после logout токен гарантированно не проходит ни Verify,
// ни Refresh.
type TokenService struct {
	tokens TokensRepo

	jwt   crypto.JWTConfig
	grace time.Duration

	cleanupInterval time.Duration
}

// NewTokenService создаёт TokenService с настройками из конфига.
func NewTokenService(tokens TokensRepo, cfg *config.Config) *TokenService {
	return &TokenService{
		tokens: tokens,
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
		grace:           cfg.Auth.RefreshGrace,
		cleanupInterval: cfg.Auth.Revocation.CleanupInterval,
	}
}

// Issue выпускает новый access-токен для пользователя.
//
// Возвращает токен и срок его жизни в секундах (expires_in).
func (s *TokenService) Issue(userID uuid.UUID) (string, int64, error) {
	token, _, err := crypto.NewAccessToken(userID.String(), s.jwt)
	if err != nil {
		return "", 0, serr.ErrInternal
	}
	return token, int64(s.jwt.AccessTTL.Seconds()), nil
}

// Verify проверяет токен и возвращает id пользователя.
//
// Ошибки:
//   - ErrTokenExpired — токен просрочен
//   - ErrTokenRevoked — токен отозван (logout или уже использованный refresh)
//   - ErrUnauthorized — всё остальное (битая подпись, чужой iss/aud и т.п.)
func (s *TokenService) Verify(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	claims, err := crypto.ParseAccessToken(tokenStr, s.jwt, 0)
	if err != nil {
		return uuid.Nil, err
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, serr.ErrUnauthorized
	}

	revoked, err := s.tokens.IsRevoked(ctx, jti)
	if err != nil {
		return uuid.Nil, err
	}
	if revoked {
		return uuid.Nil, serr.ErrTokenRevoked
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, serr.ErrUnauthorized
	}
	return userID, nil
}

// Refresh выпускает новый токен взамен переданного.
//
// Старый токен принимается даже просроченным, но не дольше grace-окна
// после exp. Перед выпуском нового токена старый jti атомарно
// «забирается» (отзывается) в хранилище: если он уже был отозван —
// например конкурентным logout или вторым refresh того же токена —
// операция завершится ErrUnauthorized. Так refresh и revoke по одному
// токену никогда не срабатывают оба.
func (s *TokenService) Refresh(ctx context.Context, tokenStr string) (uuid.UUID, string, int64, error) {
	claims, err := crypto.ParseAccessToken(tokenStr, s.jwt, s.grace)
	if err != nil {
		if errors.Is(err, serr.ErrTokenExpired) {
			// просрочен сверх grace-окна
			return uuid.Nil, "", 0, serr.ErrUnauthorized
		}
		return uuid.Nil, "", 0, err
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, "", 0, serr.ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", 0, serr.ErrUnauthorized
	}

	// строка отзыва должна пережить grace-окно, иначе просроченный
	// токен можно было бы refresh-нуть повторно после очистки
	claimed, err := s.tokens.Revoke(ctx, jti, claims.ExpiresAt.Time.Add(s.grace))
	if err != nil {
		return uuid.Nil, "", 0, err
	}
	if !claimed {
		return uuid.Nil, "", 0, serr.ErrUnauthorized
	}

	token, expiresIn, err := s.Issue(userID)
	if err != nil {
		return uuid.Nil, "", 0, err
	}
	return userID, token, expiresIn, nil
}

// Revoke отзывает токен (logout).
//
// Повторный отзыв уже отозванного токена не является ошибкой.
// После Revoke любой Verify/Refresh этого токена завершится отказом.
func (s *TokenService) Revoke(ctx context.Context, tokenStr string) error {
	claims, err := crypto.ParseAccessToken(tokenStr, s.jwt, 0)
	if err != nil {
		return err
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return serr.ErrUnauthorized
	}

	_, err = s.tokens.Revoke(ctx, jti, claims.ExpiresAt.Time.Add(s.grace))
	return err
}

// RunJanitor периодически удаляет просроченные записи об отзыве,
// ограничивая размер таблицы revoked_tokens.
//
// Блокируется до отмены контекста; запускается отдельной горутиной при старте сервера.
func (s *TokenService) RunJanitor(ctx context.Context, onSweep func(deleted int64, err error)) {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.tokens.DeleteExpired(ctx, time.Now())
			if onSweep != nil {
				onSweep(n, err)
			}
		}
	}
}
