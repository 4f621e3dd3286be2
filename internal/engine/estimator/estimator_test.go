package estimator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/pkg/ptr"
	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

const shopID = "shop-1"

var now = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

func catalog() domain.Catalog {
	return domain.NewCatalog([]domain.Service{
		{ID: "cut", ShopID: shopID, AverageDurationMinutes: 40},
		{ID: "beard", ShopID: shopID, AverageDurationMinutes: 20},
		{ID: "long", ShopID: shopID, AverageDurationMinutes: 100},
	})
}

func entry(id string, status domain.QueueStatus, position int, serviceID *string) domain.QueueEntry {
	return domain.QueueEntry{
		ID:        id,
		ShopID:    shopID,
		ServiceID: serviceID,
		Status:    status,
		Position:  position,
	}
}

func booking(id, start string, duration int, status domain.BookingStatus) domain.Booking {
	return domain.Booking{
		ID:              id,
		ShopID:          shopID,
		BookingDate:     domain.DayStart(now),
		StartTime:       types.MustTimeString(start),
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestEmptyQueueNoBookings(t *testing.T) {
	est := New(DefaultConfig()).EstimateWait(shopID, nil, nil, catalog(), 30, now)

	assert.Equal(t, 0, est.QueueMinutes)
	assert.Equal(t, 0, est.BookingBlockedMinutes)
	assert.Equal(t, 0, est.TotalMinutes)
	assert.Empty(t, est.BlockedSlots)
	assert.Nil(t, est.Warning)
}

func TestQueueMinutesUsesCatalogAndDefault(t *testing.T) {
	queue := []domain.QueueEntry{
		entry("a", domain.QueueInService, 0, ptr.Ptr("cut")),
		entry("b", domain.QueueWaiting, 1, ptr.Ptr("beard")),
		entry("c", domain.QueueWaiting, 2, nil),
		entry("d", domain.QueueWaiting, 3, ptr.Ptr("ghost")),
		entry("e", domain.QueueCompleted, 0, ptr.Ptr("long")),
		{ID: "f", ShopID: "other-shop", Status: domain.QueueWaiting, Position: 1, ServiceID: ptr.Ptr("long")},
	}

	est := New(DefaultConfig()).EstimateWait(shopID, queue, nil, catalog(), 20, now)

	assert.Equal(t, 40+20+30+30, est.QueueMinutes)
	assert.Equal(t, []string{"ghost"}, est.UnknownServiceIDs)
}

func TestOverloadWarningExample(t *testing.T) {
	// queue = 100, requested = 20, one booking at +45 minutes for 30 minutes
	queue := []domain.QueueEntry{entry("a", domain.QueueWaiting, 1, ptr.Ptr("long"))}
	bookings := []domain.Booking{booking("b1", "09:45", 30, domain.StatusConfirmed)}

	est := New(DefaultConfig()).EstimateWait(shopID, queue, bookings, catalog(), 20, now)

	assert.Equal(t, 100, est.QueueMinutes)
	assert.Equal(t, 30, est.BookingBlockedMinutes)
	assert.Equal(t, []types.TimeString{"09:45"}, est.BlockedSlots)
	assert.Equal(t, 130, est.TotalMinutes)
	require.NotNil(t, est.Warning)
	assert.Equal(t, WarningOverload, est.Warning.Kind)
}

func TestInformationalWarning(t *testing.T) {
	bookings := []domain.Booking{
		booking("b1", "09:30", 30, domain.StatusPending),
		booking("b2", "09:10", 0, domain.StatusConfirmed),
	}

	est := New(DefaultConfig()).EstimateWait(shopID, nil, bookings, catalog(), 30, now)

	assert.Equal(t, 60, est.BookingBlockedMinutes)
	assert.Equal(t, []types.TimeString{"09:10", "09:30"}, est.BlockedSlots)
	require.NotNil(t, est.Warning)
	assert.Equal(t, WarningInterrupting, est.Warning.Kind)
	assert.Contains(t, est.Warning.Message, "2 scheduled")
}

func TestInterruptionWindowBoundary(t *testing.T) {
	// window = 0 + 30 + 60 = 90 minutes
	bookings := []domain.Booking{
		booking("edge", "10:30", 30, domain.StatusConfirmed),
		booking("beyond", "10:31", 30, domain.StatusConfirmed),
		booking("now", "09:00", 15, domain.StatusConfirmed),
	}

	est := New(DefaultConfig()).EstimateWait(shopID, nil, bookings, catalog(), 30, now)

	assert.Equal(t, []types.TimeString{"09:00", "10:30"}, est.BlockedSlots)
	assert.Equal(t, 45, est.BookingBlockedMinutes)
}

func TestBookingsFiltered(t *testing.T) {
	past := booking("past", "08:30", 30, domain.StatusConfirmed)
	cancelled := booking("cancelled", "09:20", 30, domain.StatusCancelled)
	started := booking("started", "09:20", 30, domain.StatusInProgress)
	tomorrow := booking("tomorrow", "09:20", 30, domain.StatusConfirmed)
	tomorrow.BookingDate = tomorrow.BookingDate.AddDate(0, 0, 1)
	foreign := booking("foreign", "09:20", 30, domain.StatusConfirmed)
	foreign.ShopID = "other-shop"

	est := New(DefaultConfig()).EstimateWait(shopID, nil,
		[]domain.Booking{past, cancelled, started, tomorrow, foreign}, catalog(), 30, now)

	assert.Empty(t, est.BlockedSlots)
	assert.Equal(t, 0, est.TotalMinutes)
}

func TestDeterministic(t *testing.T) {
	queue := []domain.QueueEntry{
		entry("a", domain.QueueWaiting, 1, ptr.Ptr("ghost")),
		entry("b", domain.QueueWaiting, 2, ptr.Ptr("phantom")),
	}
	bookings := []domain.Booking{
		booking("b2", "09:40", 30, domain.StatusConfirmed),
		booking("b1", "09:40", 20, domain.StatusPending),
	}

	e := New(DefaultConfig())
	first := e.EstimateWait(shopID, queue, bookings, catalog(), 20, now)
	second := e.EstimateWait(shopID, queue, bookings, catalog(), 20, now)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"ghost", "phantom"}, first.UnknownServiceIDs)
}

func TestConfigurableThresholds(t *testing.T) {
	e := New(Config{OverloadWarningMinutes: 50})
	queue := []domain.QueueEntry{entry("a", domain.QueueWaiting, 1, nil), entry("b", domain.QueueWaiting, 2, nil)}

	est := e.EstimateWait(shopID, queue, nil, catalog(), 30, now)

	assert.Equal(t, 60, est.TotalMinutes)
	require.NotNil(t, est.Warning)
	assert.Equal(t, WarningOverload, est.Warning.Kind)
	assert.Equal(t, 60, e.Config().LookaheadMinutes)
}

func TestEstimateForEntry(t *testing.T) {
	queue := []domain.QueueEntry{
		entry("a", domain.QueueInService, 0, ptr.Ptr("cut")),
		entry("b", domain.QueueWaiting, 1, ptr.Ptr("beard")),
		entry("c", domain.QueueWaiting, 2, nil),
		entry("d", domain.QueueWaiting, 3, ptr.Ptr("long")),
	}
	e := New(DefaultConfig())

	est, err := e.EstimateForEntry(shopID, queue, nil, catalog(), "c", now)
	require.NoError(t, err)
	assert.Equal(t, 60, est.QueueMinutes)

	est, err = e.EstimateForEntry(shopID, queue, nil, catalog(), "b", now)
	require.NoError(t, err)
	assert.Equal(t, 40, est.TotalMinutes)

	_, err = e.EstimateForEntry(shopID, queue, nil, catalog(), "a", now)
	assert.ErrorIs(t, err, ErrEntryNotWaiting)

	_, err = e.EstimateForEntry(shopID, queue, nil, catalog(), "zzz", now)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEstimateForEntryMatchesAdmission(t *testing.T) {
	queue := []domain.QueueEntry{
		entry("a", domain.QueueInService, 0, ptr.Ptr("cut")),
		entry("b", domain.QueueWaiting, 1, nil),
	}
	bookings := []domain.Booking{booking("x", "10:00", 30, domain.StatusConfirmed)}
	e := New(DefaultConfig())

	admission := e.EstimateWait(shopID, queue, bookings, catalog(), 20, now)

	joined := append(queue, entry("new", domain.QueueWaiting, 2, ptr.Ptr("beard")))
	refreshed, err := e.EstimateForEntry(shopID, joined, bookings, catalog(), "new", now)
	require.NoError(t, err)

	assert.Equal(t, admission, refreshed)
}
