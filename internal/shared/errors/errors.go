// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Неверные учётные данные (email/пароль не совпали)
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// только для токенов
var (
	// Токен просрочен
	ErrTokenExpired = errors.New("token expired")
	// Токен отозван (logout или single-use refresh)
	ErrTokenRevoked = errors.New("token revoked")
)
