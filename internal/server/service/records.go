package service

import (
	"context"
	"strings"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/models"
)

// RecordsService реализует бизнес-логику учебных записей.
//
// Логики здесь немного: форматные правила проверяет api слой,
// существование записи по id — репозиторий. Сервис нормализует входные
// строки и изолирует хендлеры от репозитория.
type RecordsService struct {
	records RecordsRepo
}

func NewRecordsService(records RecordsRepo) *RecordsService {
	return &RecordsService{records: records}
}

// List возвращает все записи (может быть пустым).
func (s *RecordsService) List(ctx context.Context) ([]models.Record, error) {
	return s.records.List(ctx)
}

// Create создаёт новую запись.
func (s *RecordsService) Create(ctx context.Context, name, course, email, phone string) (models.Record, error) {
	return s.records.Create(ctx,
		strings.TrimSpace(name),
		strings.TrimSpace(course),
		strings.TrimSpace(strings.ToLower(email)),
		strings.TrimSpace(phone),
	)
}

// Get возвращает запись по id (ErrNotFound если её нет).
func (s *RecordsService) Get(ctx context.Context, id int64) (models.Record, error) {
	return s.records.GetByID(ctx, id)
}

// Update полностью перезаписывает запись: все четыре поля берутся из
// запроса, старые значения не «просачиваются» (full replace, не merge).
func (s *RecordsService) Update(ctx context.Context, id int64, name, course, email, phone string) error {
	return s.records.Update(ctx, id,
		strings.TrimSpace(name),
		strings.TrimSpace(course),
		strings.TrimSpace(strings.ToLower(email)),
		strings.TrimSpace(phone),
	)
}

// Delete удаляет запись по id (ErrNotFound если её нет).
func (s *RecordsService) Delete(ctx context.Context, id int64) error {
	return s.records.Delete(ctx, id)
}
