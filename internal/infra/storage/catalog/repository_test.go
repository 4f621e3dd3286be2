package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestGetShop(t *testing.T) {
	repo, mock := newRepo(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at FROM shops WHERE id = $1")).
		WithArgs("shop-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow("shop-1", "Fade Room", created))
	mock.ExpectQuery("FROM shops").WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	shop, err := repo.GetShop(context.Background(), "shop-1")
	require.NoError(t, err)
	assert.Equal(t, "Fade Room", shop.Name)

	_, err = repo.GetShop(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrShopNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListServices(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, shop_id, name, average_duration_minutes, price FROM services WHERE shop_id = $1 ORDER BY name ASC")).
		WithArgs("shop-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "shop_id", "name", "average_duration_minutes", "price"}).
			AddRow("svc-beard", "shop-1", "Beard trim", 20, 15.0).
			AddRow("svc-cut", "shop-1", "Haircut", 40, 30.0))

	services, err := repo.ListServices(context.Background(), "shop-1")
	require.NoError(t, err)
	require.Len(t, services, 2)

	catalog := domain.NewCatalog(services)
	d, known := catalog.Duration(&services[1].ID, 30)
	assert.True(t, known)
	assert.Equal(t, 40, d)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetServiceNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM services").WithArgs("svc-x", "shop-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "shop_id", "name", "average_duration_minutes", "price"}))

	_, err := repo.GetService(context.Background(), "shop-1", "svc-x")
	assert.ErrorIs(t, err, ErrServiceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListSchedules(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM schedules WHERE shop_id = $1 ORDER BY weekday ASC")).
		WithArgs("shop-1").
		WillReturnRows(sqlmock.NewRows([]string{"shop_id", "weekday", "open_time", "close_time", "is_closed"}).
			AddRow("shop-1", 0, nil, nil, true).
			AddRow("shop-1", 1, "09:00:00", "18:00:00", false))

	schedules, err := repo.ListSchedules(context.Background(), "shop-1")
	require.NoError(t, err)
	require.Len(t, schedules, 2)

	assert.Equal(t, time.Sunday, schedules[0].Weekday)
	assert.False(t, schedules[0].IsOpen())
	assert.Equal(t, time.Monday, schedules[1].Weekday)
	assert.Equal(t, types.TimeString("09:00"), schedules[1].OpenTime)
	assert.Equal(t, types.TimeString("18:00"), schedules[1].CloseTime)
	require.NoError(t, mock.ExpectationsWereMet())
}
