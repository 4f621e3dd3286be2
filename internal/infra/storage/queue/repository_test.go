package queue

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberQueue/pkg/ptr"
)

var created = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, *dbmetrics.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), mock, wrapped
}

func entryRow(id, status string, position int, serviceID interface{}) []driver.Value {
	return []driver.Value{
		id, "shop-1", serviceID, "Ivan", nil, status, position, 40, nil, created, nil, nil, created,
	}
}

func TestListActive(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM queue_entries WHERE shop_id = $1 AND status IN ($2,$3) ORDER BY position ASC, created_at ASC")).
		WithArgs("shop-1", "waiting", "in_service").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(entryRow("e-0", "in_service", 0, "svc-cut")...).
			AddRow(entryRow("e-1", "waiting", 1, nil)...))

	entries, err := repo.ListActive(context.Background(), "shop-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.QueueInService, entries[0].Status)
	require.NotNil(t, entries[0].ServiceID)
	assert.Equal(t, "svc-cut", *entries[0].ServiceID)
	assert.Nil(t, entries[1].ServiceID)
	assert.Equal(t, 1, entries[1].Position)
	assert.Equal(t, 40, entries[1].EstimatedWaitMinutes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveForUpdateInTransaction(t *testing.T) {
	repo, mock, wrapped := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectCommit()

	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	entries, err := repo.ListActive(dbmetrics.WithTx(context.Background(), tx), "shop-1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery("SELECT").WithArgs("e-9", "shop-1").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), "shop-1", "e-9")
	assert.ErrorIs(t, err, ErrEntryNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO queue_entries")).
		WithArgs("e-1", "shop-1", "svc-cut", "Ivan", "+100", "waiting", 3, 55, nil, created, nil, nil, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.QueueEntry{
		ID:                   "e-1",
		ShopID:               "shop-1",
		ServiceID:            ptr.Ptr("svc-cut"),
		CustomerName:         "Ivan",
		CustomerPhone:        ptr.Ptr("+100"),
		Status:               domain.QueueWaiting,
		Position:             3,
		EstimatedWaitMinutes: 55,
		CreatedAt:            created,
		UpdatedAt:            created,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock, _ := newRepo(t)
	called := created.Add(10 * time.Minute)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE queue_entries SET status = $1, position = $2, estimated_wait_minutes = $3, "+
			"called_at = $4, completed_at = $5, updated_at = $6 WHERE id = $7 AND shop_id = $8")).
		WithArgs("in_service", 0, 40, called, nil, called, "e-1", "shop-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec("UPDATE queue_entries").WillReturnResult(sqlmock.NewResult(0, 0))

	entry := &domain.QueueEntry{
		ID:                   "e-1",
		ShopID:               "shop-1",
		Status:               domain.QueueInService,
		EstimatedWaitMinutes: 40,
		CalledAt:             &called,
		UpdatedAt:            called,
	}
	require.NoError(t, repo.Update(context.Background(), entry))

	entry.ID = "gone"
	assert.ErrorIs(t, repo.Update(context.Background(), entry), ErrEntryNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
