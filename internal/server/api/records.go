// HTTP-хендлеры CRUD учебных записей.
//
// Группа /record исторически открыта (без аутентификации) и использует
// 422 для ошибок валидации — в отличие от /auth с его 400. Оба статуса
// сохранены намеренно как наблюдаемый контракт.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/models"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

// RecordRequest — тело store и update: все четыре поля обязательны,
// update всегда полный (full replace).
type RecordRequest struct {
	Name   string `json:"name" validate:"required,max=191"`
	Course string `json:"course" validate:"required,max=191"`
	Email  string `json:"email" validate:"required,email,max=191"`
	Phone  string `json:"phone" validate:"required,digits=10"`
}

// RecordListResponse — ответ index: {"status":200,"records":[...]}.
type RecordListResponse struct {
	Status  int             `json:"status"`
	Records []models.Record `json:"records"`
}

// RecordResponse — ответ show: {"status":200,"record":{...}}.
type RecordResponse struct {
	Status int           `json:"status"`
	Record models.Record `json:"record"`
}

// RecordEditResponse — ответ edit.
//
// Ключ называется records (в единственной записи) — причуда исходного
// контракта, сохранена как есть.
type RecordEditResponse struct {
	Status  int           `json:"status"`
	Records models.Record `json:"records"`
}

// Index возвращает все записи.
//
// Пустой список — это 404 {"status":404,"message":"No Records Found"},
// не пустой массив.
//
// @Summary      List records
// @Tags         record
// @Produce      json
// @Success      200 {object} RecordListResponse
// @Failure      404 {object} StatusMessageResponse "No Records Found"
// @Router       /record [get]
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	records, err := h.Svc.Records.List(r.Context())
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list records failed", "error", err)
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	if len(records) == 0 {
		WriteStatusMessage(w, http.StatusNotFound, "No Records Found")
		return
	}

	WriteJSON(w, http.StatusOK, RecordListResponse{Status: http.StatusOK, Records: records})
}

// Store создаёт новую запись.
//
// Ответы:
//   - 200 OK: {"status":200,"message":"Created A Record Successfully"};
//   - 422 Unprocessable Entity: {"status":422,"errors":{...}};
//   - 500 Internal Server Error: ошибка хранилища.
//
// @Summary      Create record
// @Tags         record
// @Accept       json
// @Produce      json
// @Param        request body RecordRequest true "Record fields"
// @Success      200 {object} StatusMessageResponse
// @Failure      422 {object} ValidationErrorResponse "Validation errors"
// @Failure      500 {object} StatusMessageResponse "Internal server error"
// @Router       /record [post]
func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	var req RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteStatusMessage(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	if errs := validation.Struct(req); errs != nil {
		WriteValidationErrors(w, http.StatusUnprocessableEntity, errs)
		return
	}

	if _, err := h.Svc.Records.Create(r.Context(), req.Name, req.Course, req.Email, req.Phone); err != nil {
		h.Log.Logger.Sugar().Errorw("create record failed", "error", err)
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	WriteStatusMessage(w, http.StatusOK, "Created A Record Successfully")
}

// Show возвращает запись по id.
//
// @Summary      Get record
// @Tags         record
// @Produce      json
// @Param        id path int true "Record ID"
// @Success      200 {object} RecordResponse
// @Failure      404 {object} StatusMessageResponse "No Such Record Found!"
// @Router       /record/{id} [get]
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(r)
	if !ok {
		WriteStatusMessage(w, http.StatusNotFound, "No Such Record Found!")
		return
	}

	record, err := h.Svc.Records.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteStatusMessage(w, http.StatusNotFound, "No Such Record Found!")
			return
		}
		h.Log.Logger.Sugar().Errorw("get record failed", "error", err, "record_id", id)
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	WriteJSON(w, http.StatusOK, RecordResponse{Status: http.StatusOK, Record: record})
}

// Edit возвращает запись для формы редактирования.
//
// То же самое, что Show, но запись лежит под ключом records.
//
// @Summary      Get record for editing
// @Tags         record
// @Produce      json
// @Param        id path int true "Record ID"
// @Success      200 {object} RecordEditResponse
// @Failure      404 {object} StatusMessageResponse "No Such Record Found!"
// @Router       /record/{id}/edit [get]
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(r)
	if !ok {
		WriteStatusMessage(w, http.StatusNotFound, "No Such Record Found!")
		return
	}

	record, err := h.Svc.Records.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteStatusMessage(w, http.StatusNotFound, "No Such Record Found!")
			return
		}
		h.Log.Logger.Sugar().Errorw("get record failed", "error", err, "record_id", id)
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	WriteJSON(w, http.StatusOK, RecordEditResponse{Status: http.StatusOK, Records: record})
}

// Update полностью перезаписывает запись.
//
// Ответы:
//   - 200 OK: {"status":200,"message":"Record Updated Successfully"};
//   - 404 Not Found: {"status":404,"message":"Record Not Found!"};
//   - 422 Unprocessable Entity: ошибки валидации.
//
// @Summary      Update record
// @Description  Full replace of all four fields.
// @Tags         record
// @Accept       json
// @Produce      json
// @Param        id path int true "Record ID"
// @Param        request body RecordRequest true "Record fields"
// @Success      200 {object} StatusMessageResponse
// @Failure      404 {object} StatusMessageResponse "Record Not Found!"
// @Failure      422 {object} ValidationErrorResponse "Validation errors"
// @Router       /record/{id}/edit [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteStatusMessage(w, http.StatusBadRequest, serr.ErrBadJSON.Error())
		return
	}

	// как и в исходном контракте: сначала валидация, потом поиск по id
	if errs := validation.Struct(req); errs != nil {
		WriteValidationErrors(w, http.StatusUnprocessableEntity, errs)
		return
	}

	id, ok := recordID(r)
	if !ok {
		WriteStatusMessage(w, http.StatusNotFound, "Record Not Found!")
		return
	}

	if err := h.Svc.Records.Update(r.Context(), id, req.Name, req.Course, req.Email, req.Phone); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteStatusMessage(w, http.StatusNotFound, "Record Not Found!")
			return
		}
		h.Log.Logger.Sugar().Errorw("update record failed", "error", err, "record_id", id)
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	WriteStatusMessage(w, http.StatusOK, "Record Updated Successfully")
}

// Destroy удаляет запись по id.
//
// Статус в теле и заголовке согласован: 200/200 (в исходнике тело
// утверждало 202 при заголовке 200 — нормализовано).
//
// @Summary      Delete record
// @Tags         record
// @Produce      json
// @Param        id path int true "Record ID"
// @Success      200 {object} StatusMessageResponse
// @Failure      404 {object} StatusMessageResponse "Record Not Found!"
// @Router       /record/{id} [delete]
func (h *Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(r)
	if !ok {
		WriteStatusMessage(w, http.StatusNotFound, "Record Not Found!")
		return
	}

	if err := h.Svc.Records.Delete(r.Context(), id); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			WriteStatusMessage(w, http.StatusNotFound, "Record Not Found!")
			return
		}
		h.Log.Logger.Sugar().Errorw("delete record failed", "error", err, "record_id", id)
		WriteStatusMessage(w, http.StatusInternalServerError, MsgSomethingWentWrong)
		return
	}

	WriteStatusMessage(w, http.StatusOK, "Record Deleted!")
}

// recordID достаёт числовой id из URL. Нечисловой id неотличим для
// клиента от несуществующего — дальше хендлеры отвечают 404.
func recordID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
