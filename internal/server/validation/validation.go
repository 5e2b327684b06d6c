// Package validation реализует слой валидации входных данных.
//
// Правила описываются тегами `validate:"..."` на структурах запросов
// (go-playground/validator), а результатом проверки является либо nil,
// либо накопленная карта ошибок поле -> список сообщений.
//
// Важно: валидация не останавливается на первом невалидном поле —
// клиент получает сообщения сразу по всем полям (accumulate-all).
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MsgEmailTaken — сообщение для нарушения уникальности email.
//
// Уникальность проверяется не тегом, а через хранилище (сервисный слой),
// но клиенту она подаётся как обычная ошибка валидации поля email.
const MsgEmailTaken = "The email has already been taken."

// Errors — накопленные ошибки валидации: имя поля -> сообщения.
//
// Тип реализует error, поэтому сервисный слой может возвращать его
// как обычную ошибку, а api слой — доставать через errors.As
// и отдавать клиенту в JSON как есть.
type Errors map[string][]string

func (e Errors) Error() string {
	return "validation failed"
}

// Add добавляет сообщение к полю.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

var validate = newValidator()

// newValidator настраивает validator:
//   - имена полей в ошибках берутся из json-тегов;
//   - регистрируется правило digits=N (строка ровно из N ASCII-цифр).
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// digits=10: ровно 10 цифр, без знаков и пробелов.
	// Встроенный numeric не подходит — он пропускает "-123456789".
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if fl.Param() != "" && len(s) != atoi(fl.Param()) {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return len(s) > 0
	})

	return v
}

// Struct проверяет структуру по её validate-тегам.
//
// Возвращает nil, если все поля валидны, иначе Errors со всеми
// нарушениями (по каждому полю — первое сработавшее правило).
func Struct(s any) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError — ошибка программиста (не-структура и т.п.)
		panic(err)
	}

	out := Errors{}
	for _, fe := range verrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

// message переводит сработавшее правило в человекочитаемое сообщение.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", fe.Field())
	case "max":
		return fmt.Sprintf("The %s must not be greater than %s characters.", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", fe.Field(), fe.Param())
	case "digits":
		return fmt.Sprintf("The %s must be %s digits.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", fe.Field())
	}
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}
