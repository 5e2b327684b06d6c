package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

var recordColumns = []string{"id", "name", "course", "email", "phone", "created_at", "updated_at"}

// Список в порядке id
func TestRecordsRepository_List_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewRecordsRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, course, email, phone, created_at, updated_at`).
		WillReturnRows(
			sqlmock.NewRows(recordColumns).
				AddRow(int64(1), "Ivan", "Math", "ivan@mail.com", "9001234567", now, now).
				AddRow(int64(2), "Petr", "Physics", "petr@mail.com", "9007654321", now, now),
		)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected records: %+v", got)
	}
}

// Пустая таблица — пустой срез, не ошибка
func TestRecordsRepository_List_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewRecordsRepository(db)

	mock.ExpectQuery(`SELECT id, name, course, email, phone, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows(recordColumns))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

// Успех
func TestRecordsRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewRecordsRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO records`).
		WithArgs("Ivan", "Math", "ivan@mail.com", "9001234567").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(7), now, now),
		)

	got, err := repo.Create(context.Background(), "Ivan", "Math", "ivan@mail.com", "9001234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 7 || got.Name != "Ivan" || got.Phone != "9001234567" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

// Ошибка сервера
func TestRecordsRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewRecordsRepository(db)

	mock.ExpectQuery(`INSERT INTO records`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "Ivan", "Math", "ivan@mail.com", "9001234567")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// Запись по id
func TestRecordsRepository_GetByID_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewRecordsRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, name, course, email, phone, created_at, updated_at`).
		WithArgs(int64(7)).
		WillReturnRows(
			sqlmock.NewRows(recordColumns).
				AddRow(int64(7), "Ivan", "Math", "ivan@mail.com", "9001234567", now, now),
		)

	got, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

// id нет
func TestRecordsRepository_GetByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewRecordsRepository(db)

	mock.ExpectQuery(`SELECT id, name, course, email, phone, created_at, updated_at`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 7)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Update: затронута 1 строка — успех
func TestRecordsRepository_Update_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewRecordsRepository(db)

	mock.ExpectExec(`UPDATE records`).
		WithArgs(int64(7), "Ivan", "Math", "ivan@mail.com", "9001234567").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), 7, "Ivan", "Math", "ivan@mail.com", "9001234567"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Update: 0 строк — ErrNotFound
func TestRecordsRepository_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewRecordsRepository(db)

	mock.ExpectExec(`UPDATE records`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 999, "Ivan", "Math", "ivan@mail.com", "9001234567")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Delete: затронута 1 строка — успех
func TestRecordsRepository_Delete_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewRecordsRepository(db)

	mock.ExpectExec(`DELETE FROM records`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// Delete: 0 строк — ErrNotFound
func TestRecordsRepository_Delete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewRecordsRepository(db)

	mock.ExpectExec(`DELETE FROM records`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 999)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
