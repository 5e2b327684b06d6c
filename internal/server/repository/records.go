// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

// RecordsRepository отвечает за хранение учебных записей.
type RecordsRepository struct {
	db *sql.DB
}

func NewRecordsRepository(db *sql.DB) *RecordsRepository {
	return &RecordsRepository{db: db}
}

// List возвращает все записи в порядке создания.
func (r *RecordsRepository) List(ctx context.Context) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, course, email, phone, created_at, updated_at
		   FROM records
		  ORDER BY id`,
	)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	var out []models.Record
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Course, &rec.Email, &rec.Phone, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return out, nil
}

// Create вставляет новую запись и возвращает её вместе с присвоенным id.
func (r *RecordsRepository) Create(ctx context.Context, name, course, email, phone string) (models.Record, error) {
	rec := models.Record{
		Name:   name,
		Course: course,
		Email:  email,
		Phone:  phone,
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO records (name, course, email, phone)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id, created_at, updated_at`,
		name, course, email, phone,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return models.Record{}, serr.ErrInternal
	}

	return rec, nil
}

func (r *RecordsRepository) GetByID(ctx context.Context, id int64) (models.Record, error) {
	var rec models.Record

	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, course, email, phone, created_at, updated_at
		   FROM records
		  WHERE id=$1`,
		id,
	).Scan(&rec.ID, &rec.Name, &rec.Course, &rec.Email, &rec.Phone, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Record{}, serr.ErrNotFound
		}
		return models.Record{}, serr.ErrInternal
	}

	return rec, nil
}

// Update перезаписывает все четыре поля записи (full replace, не merge).
//
// Если записи с таким id нет — возвращает ErrNotFound.
func (r *RecordsRepository) Update(ctx context.Context, id int64, name, course, email, phone string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE records
		    SET name = $2,
		        course = $3,
		        email = $4,
		        phone = $5,
		        updated_at = now()
		  WHERE id = $1`,
		id, name, course, email, phone,
	)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}

// Delete удаляет запись по id. Если записи нет — ErrNotFound.
func (r *RecordsRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM records WHERE id = $1`,
		id,
	)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}
