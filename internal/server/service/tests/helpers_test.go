package tests

import (
	"time"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/config"
)

// testConfig — минимальный конфиг для сервисных тестов:
// быстрый bcrypt и короткие интервалы.
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
				CleanupInterval: 10 * time.Millisecond,
			},
		},
		Password: config.PasswordConfig{
			Hasher: "bcrypt",
			Bcrypt: config.BcryptConfig{Cost: 4},
		},
	}
}
