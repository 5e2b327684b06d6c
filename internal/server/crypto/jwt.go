// Package crypto содержит криптографические примитивы,
// используемые сервером Record Book.
//
// В частности, пакет отвечает за:
//   - генерацию и подпись JWT access-токенов;
//   - настройку параметров токенов (issuer, audience, TTL);
//   - разбор и проверку токенов (подпись, срок жизни, iss/aud);
//   - хэширование паролей пользователей.
package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

// JWTConfig описывает параметры генерации JWT access-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни access-токена.
	AccessTTL time.Duration
}

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Токен содержит стандартные RegisteredClaims:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (userID)
//   - jti (уникальный идентификатор токена — по нему работает отзыв)
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//
// Используется алгоритм подписи HS256.
// Возвращает подписанный токен и его jti.
func NewAccessToken(userID string, cfg JWTConfig) (string, uuid.UUID, error) {
	now := time.Now()
	jti := uuid.New()

	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		Subject:   userID,
		ID:        jti.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(cfg.SigningKey))
	if err != nil {
		return "", uuid.Nil, err
	}
	return signed, jti, nil
}

// ParseAccessToken разбирает и проверяет JWT access-токен.
//
// Проверяется:
//   - подпись (только HS256);
//   - срок жизни с допуском leeway (для refresh в пределах grace-окна
//     передают ненулевой leeway, для обычной проверки — 0);
//   - issuer и audience, если заданы в конфиге;
//   - непустые sub и jti.
//
// Ошибки:
//   - ErrTokenExpired если токен просрочен сверх leeway
//   - ErrUnauthorized при любой другой проблеме с токеном
func ParseAccessToken(tokenStr string, cfg JWTConfig, leeway time.Duration) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	}
	if leeway > 0 {
		opts = append(opts, jwt.WithLeeway(leeway))
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	parser := jwt.NewParser(opts...)
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, serr.ErrTokenExpired
		}
		return nil, serr.ErrUnauthorized
	}

	if claims.Subject == "" || claims.ID == "" {
		return nil, serr.ErrUnauthorized
	}

	return claims, nil
}
