// Package api реализует HTTP-слой сервера Record Book.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - валидацию тел запросов (пакет validation);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - подключение middleware (логирование, проверка JWT и т.д.).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/service"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/validation"
	"github.com/IvanChernomyrdin/go-record-book/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// MsgSomethingWentWrong — текст всех 500-ответов: внутренние детали
// клиенту не отдаются, подробности остаются в серверном логе.
const MsgSomethingWentWrong = "Something Went Wrong"

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: middleware проверки bearer-токенов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// ErrorResponse — формат ошибки без статуса в теле: {"error":"..."}.
// Используется для 401 (контракт: {"error":"Unauthorized"}).
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusMessageResponse — конверт вида {"status":N,"message":"..."}.
type StatusMessageResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ValidationErrorResponse — конверт ошибок валидации:
// {"status":N,"errors":{"field":["msg", ...]}}.
type ValidationErrorResponse struct {
	Status int               `json:"status"`
	Errors validation.Errors `json:"errors"`
}

// WriteJSON сериализует v в тело ответа с указанным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteStatusMessage пишет конверт {"status":N,"message":"..."} со статусом N в заголовке.
func WriteStatusMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, StatusMessageResponse{Status: status, Message: message})
}

// WriteValidationErrors пишет конверт ошибок валидации со статусом status
// (400 для /auth, 422 для /record — группы исторически расходятся).
func WriteValidationErrors(w http.ResponseWriter, status int, errs validation.Errors) {
	WriteJSON(w, status, ValidationErrorResponse{Status: status, Errors: errs})
}
