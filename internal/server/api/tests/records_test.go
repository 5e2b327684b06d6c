package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

func sampleRecord(id int64) models.Record {
	return models.Record{
		ID:        id,
		Name:      "Ivan Petrov",
		Course:    "Go 101",
		Email:     "ivan@example.com",
		Phone:     "9001234567",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestIndex_OK(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().List(gomock.Any()).
		Return([]models.Record{sampleRecord(1), sampleRecord(2)}, nil)

	rec := doJSON(t, env, http.MethodGet, "/record", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody(t, rec)
	require.EqualValues(t, 200, got["status"])
	records := got["records"].([]any)
	require.Len(t, records, 2)
}

func TestIndex_Empty(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := doJSON(t, env, http.MethodGet, "/record", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"status":404,"message":"No Records Found"}`, rec.Body.String())
}

func TestStore_OK(t *testing.T) {
	env := newTestEnv(t)

	// сервис нормализует ввод до репозитория: трим + email в нижний регистр
	env.records.EXPECT().
		Create(gomock.Any(), "Ivan Petrov", "Go 101", "ivan@example.com", "9001234567").
		Return(sampleRecord(1), nil)

	rec := doJSON(t, env, http.MethodPost, "/record",
		`{"name":"  Ivan Petrov ","course":"Go 101","email":"Ivan@Example.com","phone":"9001234567"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":200,"message":"Created A Record Successfully"}`, rec.Body.String())
}

func TestStore_InvalidPhone(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env, http.MethodPost, "/record",
		`{"name":"Ivan Petrov","course":"Go 101","email":"ivan@example.com","phone":"12345"}`, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	got := decodeBody(t, rec)
	require.EqualValues(t, 422, got["status"])
	errs := got["errors"].(map[string]any)
	msgs := errs["phone"].([]any)
	require.Equal(t, "The phone must be 10 digits.", msgs[0])
}

func TestStore_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := doJSON(t, env, http.MethodPost, "/record", `{}`, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	got := decodeBody(t, rec)
	errs := got["errors"].(map[string]any)
	for _, field := range []string{"name", "course", "email", "phone"} {
		require.Contains(t, errs, field)
	}
}

func TestShow_OK(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().GetByID(gomock.Any(), int64(7)).Return(sampleRecord(7), nil)

	rec := doJSON(t, env, http.MethodGet, "/record/7", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody(t, rec)
	require.EqualValues(t, 200, got["status"])
	record := got["record"].(map[string]any)
	require.EqualValues(t, 7, record["id"])
	require.Equal(t, "Ivan Petrov", record["name"])
}

func TestShow_NotFound(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().GetByID(gomock.Any(), int64(99)).
		Return(models.Record{}, serr.ErrNotFound)

	rec := doJSON(t, env, http.MethodGet, "/record/99", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"status":404,"message":"No Such Record Found!"}`, rec.Body.String())
}

func TestShow_NonNumericID(t *testing.T) {
	env := newTestEnv(t)

	// до репозитория дело не доходит
	rec := doJSON(t, env, http.MethodGet, "/record/abc", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"status":404,"message":"No Such Record Found!"}`, rec.Body.String())
}

func TestEdit_OK(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().GetByID(gomock.Any(), int64(7)).Return(sampleRecord(7), nil)

	rec := doJSON(t, env, http.MethodGet, "/record/7/edit", "", "")

	require.Equal(t, http.StatusOK, rec.Code)

	// единственная запись лежит под ключом records
	got := decodeBody(t, rec)
	record, ok := got["records"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 7, record["id"])
}

func TestEdit_NotFound(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().GetByID(gomock.Any(), int64(99)).
		Return(models.Record{}, serr.ErrNotFound)

	rec := doJSON(t, env, http.MethodGet, "/record/99/edit", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"status":404,"message":"No Such Record Found!"}`, rec.Body.String())
}

func TestUpdate_OK(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().
		Update(gomock.Any(), int64(7), "Ivan Petrov", "Go 102", "ivan@example.com", "9001234567").
		Return(nil)

	rec := doJSON(t, env, http.MethodPut, "/record/7/edit",
		`{"name":"Ivan Petrov","course":"Go 102","email":"ivan@example.com","phone":"9001234567"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":200,"message":"Record Updated Successfully"}`, rec.Body.String())
}

func TestUpdate_PatchAlias(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().
		Update(gomock.Any(), int64(7), "Ivan Petrov", "Go 102", "ivan@example.com", "9001234567").
		Return(nil)

	rec := doJSON(t, env, http.MethodPatch, "/record/7/edit",
		`{"name":"Ivan Petrov","course":"Go 102","email":"ivan@example.com","phone":"9001234567"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdate_NotFound(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().
		Update(gomock.Any(), int64(99), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(serr.ErrNotFound)

	rec := doJSON(t, env, http.MethodPut, "/record/99/edit",
		`{"name":"Ivan Petrov","course":"Go 102","email":"ivan@example.com","phone":"9001234567"}`, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"status":404,"message":"Record Not Found!"}`, rec.Body.String())
}

func TestUpdate_ValidationBeforeLookup(t *testing.T) {
	env := newTestEnv(t)

	// невалидное тело отсекается до похода в хранилище, даже с кривым id
	rec := doJSON(t, env, http.MethodPut, "/record/abc/edit",
		`{"name":"","course":"","email":"nope","phone":"1"}`, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	got := decodeBody(t, rec)
	errs := got["errors"].(map[string]any)
	require.Contains(t, errs, "name")
	require.Contains(t, errs, "phone")
}

func TestDestroy_OK(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

	rec := doJSON(t, env, http.MethodDelete, "/record/7", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":200,"message":"Record Deleted!"}`, rec.Body.String())
}

func TestDestroy_NotFound(t *testing.T) {
	env := newTestEnv(t)

	env.records.EXPECT().Delete(gomock.Any(), int64(99)).Return(serr.ErrNotFound)

	rec := doJSON(t, env, http.MethodDelete, "/record/99", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"status":404,"message":"Record Not Found!"}`, rec.Body.String())
}
