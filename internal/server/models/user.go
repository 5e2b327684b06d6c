// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — зарегистрированный пользователь.
//
// PasswordHash никогда не сериализуется в JSON-ответы API (json:"-"):
// наружу уходят только id, name, email и created_at.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
