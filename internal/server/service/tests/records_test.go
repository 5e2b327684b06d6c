package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-record-book/internal/server/models"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/service"
	"github.com/IvanChernomyrdin/go-record-book/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-record-book/internal/shared/errors"
)

func newRecordsService(t *testing.T) (*service.RecordsService, *mocks.MockRecordsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	records := mocks.NewMockRecordsRepo(ctrl)

	return service.NewRecordsService(records), records
}

// Create нормализует вход: trim всех полей, email в нижний регистр
func TestRecordsService_Create_NormalizesInput(t *testing.T) {
	ctx := context.Background()
	svc, records := newRecordsService(t)

	records.EXPECT().
		Create(ctx, "Ivan Petrov", "Math", "ivan@mail.com", "9001234567").
		Return(models.Record{ID: 1}, nil)

	rec, err := svc.Create(ctx, " Ivan Petrov ", " Math ", " Ivan@Mail.com ", " 9001234567 ")
	require.NoError(t, err)
	require.Equal(t, int64(1), rec.ID)
}

// Update — полная замена, тоже с нормализацией
func TestRecordsService_Update_NormalizesInput(t *testing.T) {
	ctx := context.Background()
	svc, records := newRecordsService(t)

	records.EXPECT().
		Update(ctx, int64(7), "Ivan", "Math", "ivan@mail.com", "9001234567").
		Return(nil)

	err := svc.Update(ctx, 7, " Ivan ", "Math", "IVAN@MAIL.COM", "9001234567")
	require.NoError(t, err)
}

// List/Get/Delete просто делегируют репозиторию
func TestRecordsService_Delegation(t *testing.T) {
	ctx := context.Background()
	svc, records := newRecordsService(t)

	records.EXPECT().
		List(ctx).
		Return([]models.Record{{ID: 1}, {ID: 2}}, nil)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	records.EXPECT().
		GetByID(ctx, int64(2)).
		Return(models.Record{ID: 2}, nil)

	rec, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), rec.ID)

	records.EXPECT().
		Delete(ctx, int64(2)).
		Return(serr.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, 2), serr.ErrNotFound)
}
