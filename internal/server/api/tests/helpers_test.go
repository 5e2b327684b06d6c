package tests

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/api"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/config"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/middleware"
	serverhttp "github.com/IvanChernomyrdin/go-record-book/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/service"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-record-book/internal/shared/logger"
)

// testEnv — всё, что нужно хендлер-тестам: роутер и моки репозиториев.
type testEnv struct {
	router  http.Handler
	handler *api.Handler
	users   *mocks.MockUsersRepo
	records *mocks.MockRecordsRepo
	tokens  *mocks.MockTokensRepo
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:       "record-book",
			Audience:     "record-book-api",
			AccessTTL:    time.Minute,
			RefreshGrace: time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "test-signing-key-which-is-long-enough",
			},
			Revocation: config.RevocationConfig{
				Store:           "db",
				CleanupInterval: time.Minute,
			},
		},
		Password: config.PasswordConfig{
			Hasher: "bcrypt",
			Bcrypt: config.BcryptConfig{Cost: 4},
		},
	}
}

// newTestEnv собирает реальные сервисы поверх мокнутых репозиториев
// и реальный роутер — тесты гоняют полный HTTP-путь.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)

	users := mocks.NewMockUsersRepo(ctrl)
	records := mocks.NewMockRecordsRepo(ctrl)
	tokens := mocks.NewMockTokensRepo(ctrl)

	svc := service.NewServices(service.Repositories{
		Users:   users,
		Records: records,
		Tokens:  tokens,
	}, testConfig())

	h := api.NewHandler(svc, logger.NewHTTPLogger(), middleware.NewJWTVerifier(svc.Tokens))

	return &testEnv{
		router:  serverhttp.NewRouter(h),
		handler: h,
		users:   users,
		records: records,
		tokens:  tokens,
	}
}

func testPasswordHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := crypto.HashPassword(password, crypto.PasswordParams{
		Hasher:     crypto.HasherBcrypt,
		BcryptCost: 4,
	})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}
