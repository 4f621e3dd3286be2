package get_queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
	"github.com/m04kA/SMC-BarberQueue/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BarberQueue/pkg/logger"
	"github.com/m04kA/SMC-BarberQueue/pkg/ptr"
)

var now = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newUseCase(t *testing.T) (*UseCase, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	store.SeedShop(domain.Shop{ID: "s1"}, []domain.Service{
		{ID: "haircut", AverageDurationMinutes: 40},
		{ID: "beard", AverageDurationMinutes: 20},
	}, nil)

	ctx := context.Background()
	for _, e := range []domain.QueueEntry{
		{ID: "cur", Status: domain.QueueInService, ServiceID: ptr.Ptr("haircut")},
		{ID: "a", Status: domain.QueueWaiting, Position: 1, ServiceID: ptr.Ptr("beard"), EstimatedWaitMinutes: 40},
		{ID: "b", Status: domain.QueueWaiting, Position: 2, EstimatedWaitMinutes: 5},
	} {
		e := e
		e.ShopID = "s1"
		require.NoError(t, store.Queue().Create(ctx, &e))
	}

	uc := NewUseCase(store.Queue(), store.Bookings(), store.Catalog(), memory.NewLocker(),
		estimator.New(estimator.DefaultConfig()), logger.Nop())
	uc.timeProvider = fixedTime{now}
	return uc, store
}

func TestGetQueueLiveEstimates(t *testing.T) {
	uc, store := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{ShopID: "s1"})
	require.NoError(t, err)

	require.NotNil(t, resp.InService)
	assert.Equal(t, "cur", resp.InService.ID)
	require.Len(t, resp.Waiting, 2)
	assert.Equal(t, "a", resp.Waiting[0].Entry.ID)
	assert.Equal(t, 40, resp.Waiting[0].Estimate.TotalMinutes)
	assert.Equal(t, 60, resp.Waiting[1].Estimate.TotalMinutes)
	assert.Equal(t, 0, resp.Refreshed)

	// без refresh сохраненная оценка не меняется
	b, _ := store.Queue().GetByID(context.Background(), "s1", "b")
	assert.Equal(t, 5, b.EstimatedWaitMinutes)
}

func TestGetQueueRefreshPersists(t *testing.T) {
	uc, store := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{ShopID: "s1", Refresh: true})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Refreshed)

	b, _ := store.Queue().GetByID(context.Background(), "s1", "b")
	assert.Equal(t, 60, b.EstimatedWaitMinutes)
	assert.True(t, b.UpdatedAt.Equal(now))
}

func TestGetQueueUnknownShop(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{ShopID: "ghost"})
	assert.ErrorIs(t, err, ErrShopNotFound)
}
