package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BarberQueue/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberQueue/pkg/logger"
	"github.com/m04kA/SMC-BarberQueue/pkg/ptr"
)

var day = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()

	store := memory.NewStore()
	for _, b := range []domain.Booking{
		{ID: "b1", ShopID: "s1", BookingDate: day, StartTime: "09:00", Status: domain.StatusPending, Barber: domain.SpecificBarber("kim")},
		{ID: "b2", ShopID: "s1", BookingDate: day, StartTime: "10:00", Status: domain.StatusConfirmed},
		{ID: "b3", ShopID: "s1", BookingDate: day, StartTime: "11:00", Status: domain.StatusCancelled},
		{ID: "b4", ShopID: "s2", BookingDate: day, StartTime: "09:00", Status: domain.StatusPending},
	} {
		b := b
		_, err := store.Bookings().Create(context.Background(), &b)
		require.NoError(t, err)
	}

	return NewService(store.Bookings(), memory.NewLocker(), logger.Nop())
}

func TestGetByID(t *testing.T) {
	s := newService(t)

	resp, err := s.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", resp.BookingDate)
	assert.Equal(t, "09:00", resp.StartTime)
	require.NotNil(t, resp.BarberID)
	assert.Equal(t, "kim", *resp.BarberID)

	_, err = s.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListByShop(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	active, err := s.ListByShop(ctx, &models.GetShopBookingsRequest{ShopID: "s1", Date: &day})
	require.NoError(t, err)
	require.Len(t, active.Bookings, 2)
	assert.Equal(t, "b1", active.Bookings[0].ID)

	all, err := s.ListByShop(ctx, &models.GetShopBookingsRequest{ShopID: "s1", Date: &day, IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 3)

	confirmed, err := s.ListByShop(ctx, &models.GetShopBookingsRequest{ShopID: "s1", Status: ptr.Ptr("confirmed")})
	require.NoError(t, err)
	require.Len(t, confirmed.Bookings, 1)
	assert.Equal(t, "b2", confirmed.Bookings[0].ID)

	_, err = s.ListByShop(ctx, &models.GetShopBookingsRequest{ShopID: "s1", Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	empty, err := s.ListByShop(ctx, &models.GetShopBookingsRequest{ShopID: "s9"})
	require.NoError(t, err)
	assert.NotNil(t, empty.Bookings)
	assert.Empty(t, empty.Bookings)
}

func TestUpdateStatusTransitions(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	resp, err := s.UpdateStatus(ctx, "b1", &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	resp, err = s.UpdateStatus(ctx, "b1", &models.UpdateStatusRequest{Status: "cancelled", CancellationReason: ptr.Ptr("sick")})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "sick", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)

	_, err = s.UpdateStatus(ctx, "b1", &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// pending -> completed только через in_progress
	_, err = s.UpdateStatus(ctx, "b4", &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.UpdateStatus(ctx, "b4", &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.UpdateStatus(ctx, "nope", &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
