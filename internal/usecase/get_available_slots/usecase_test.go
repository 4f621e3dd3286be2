package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BarberQueue/pkg/logger"
	"github.com/m04kA/SMC-BarberQueue/pkg/ptr"
	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

// понедельник, 10:10
var now = time.Date(2024, 3, 4, 10, 10, 0, 0, time.UTC)

var (
	today    = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	tomorrow = today.AddDate(0, 0, 1)
	sunday   = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newUseCase(t *testing.T, bookings ...domain.Booking) *UseCase {
	t.Helper()

	store := memory.NewStore()
	var schedules []domain.Schedule
	for d := time.Monday; d <= time.Saturday; d++ {
		schedules = append(schedules, domain.Schedule{Weekday: d, OpenTime: "09:00", CloseTime: "12:00"})
	}
	schedules = append(schedules, domain.Schedule{Weekday: time.Sunday, IsClosed: true})
	store.SeedShop(domain.Shop{ID: "s1"}, []domain.Service{{ID: "combo", AverageDurationMinutes: 60}}, schedules)

	for i := range bookings {
		bookings[i].ShopID = "s1"
		_, err := store.Bookings().Create(context.Background(), &bookings[i])
		require.NoError(t, err)
	}

	uc := NewUseCase(store.Bookings(), store.Catalog(), Config{IntervalMinutes: 30, MinLeadMinutes: 30}, logger.Nop())
	uc.timeProvider = fixedTime{now}
	return uc
}

func starts(resp *Response) []types.TimeString {
	out := make([]types.TimeString, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		out = append(out, s.StartTime)
	}
	return out
}

func TestSlotsTodayApplyLeadTime(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{ShopID: "s1", Date: today})
	require.NoError(t, err)

	// 10:10 + 30 минут -> первый слот 11:00
	assert.Equal(t, []types.TimeString{"11:00", "11:30"}, starts(resp))
	assert.Equal(t, 30, resp.Slots[0].DurationMinutes)
}

func TestSlotsRemoveExactCollisionsPerBarber(t *testing.T) {
	uc := newUseCase(t,
		domain.Booking{ID: "b1", BookingDate: tomorrow, StartTime: "09:30", Barber: domain.SpecificBarber("kim"), Status: domain.StatusConfirmed},
		domain.Booking{ID: "b2", BookingDate: tomorrow, StartTime: "10:00", Barber: domain.SpecificBarber("lee"), Status: domain.StatusPending},
		domain.Booking{ID: "b3", BookingDate: tomorrow, StartTime: "11:00", Barber: domain.SpecificBarber("kim"), Status: domain.StatusCancelled},
	)

	resp, err := uc.Execute(context.Background(), &Request{ShopID: "s1", Date: tomorrow, BarberID: ptr.Ptr("kim")})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "10:30", "11:00", "11:30"}, starts(resp))

	anyResp, err := uc.Execute(context.Background(), &Request{ShopID: "s1", Date: tomorrow})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:30", "11:00", "11:30"}, starts(anyResp))
}

func TestSlotsServiceDurationAndInterval(t *testing.T) {
	uc := newUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{ShopID: "s1", Date: tomorrow, ServiceID: ptr.Ptr("combo"), IntervalMinutes: 60})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, starts(resp))
	for _, s := range resp.Slots {
		assert.Equal(t, 60, s.DurationMinutes)
	}
}

func TestSlotsEmptyResults(t *testing.T) {
	uc := newUseCase(t)

	closed, err := uc.Execute(context.Background(), &Request{ShopID: "s1", Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, closed.Slots)
	assert.NotNil(t, closed.Slots)

	past, err := uc.Execute(context.Background(), &Request{ShopID: "s1", Date: today.AddDate(0, 0, -1)})
	require.NoError(t, err)
	assert.Empty(t, past.Slots)
}

func TestSlotsErrors(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{ShopID: "ghost", Date: today})
	assert.ErrorIs(t, err, ErrShopNotFound)

	_, err = uc.Execute(ctx, &Request{ShopID: "s1", Date: today, ServiceID: ptr.Ptr("perm")})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(ctx, &Request{ShopID: "s1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{ShopID: "s1", Date: today, IntervalMinutes: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
