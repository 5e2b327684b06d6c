// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// TokenVerifier — то, что middleware ожидает от сервиса токенов:
// проверить bearer-токен (подпись, срок, отзыв) и вернуть id пользователя.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

// JWTVerifier инкапсулирует проверку access-токенов для HTTP middleware.
//
// Сама криптография и проверка отзыва живут в сервисе токенов;
// middleware отвечает только за извлечение токена из заголовка,
// маппинг ошибок в 401 и прокидывание userID в context.
type JWTVerifier struct {
	Tokens TokenVerifier
}

// NewJWTVerifier создаёт новый JWTVerifier поверх сервиса токенов.
func NewJWTVerifier(tokens TokenVerifier) *JWTVerifier {
	return &JWTVerifier{Tokens: tokens}
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - userID
//   - false, если пользователь не аутентифицирован
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v := ctx.Value(userIDKey)
	id, ok := v.(uuid.UUID)
	return id, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки bearer-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - проверяет токен через сервис токенов (подпись, exp, отзыв)
//   - сохраняет userID в context.Context
//
// В случае ошибки возвращает HTTP 401 с JSON {"error":"..."}.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			userID, err := v.Tokens.Verify(r.Context(), tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, serr.ErrTokenExpired):
					writeUnauthorized(w, "token expired")
				case errors.Is(err, serr.ErrTokenRevoked):
					writeUnauthorized(w, "token revoked")
				default:
					writeUnauthorized(w, "invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer извлекает токен из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
