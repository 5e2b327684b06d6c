package models

import "time"

// Record — учебная запись (студент/курс).
//
// Все четыре поля обязательны и валидируются на входе.
// Обновление всегда полное: update перезаписывает name, course, email и phone разом.
type Record struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Course    string    `json:"course"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
