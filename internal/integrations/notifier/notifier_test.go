package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/pkg/logger"
	"github.com/m04kA/SMC-BarberQueue/pkg/ptr"
	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

type recorder struct {
	calls map[string]int
	errs  int
}

func (r *recorder) RecordNotification(kind string, err error) {
	if r.calls == nil {
		r.calls = map[string]int{}
	}
	r.calls[kind]++
	if err != nil {
		r.errs++
	}
}

var now = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func TestRedisNotifierPushesJSON(t *testing.T) {
	db, mock := redismock.NewClientMock()
	rec := &recorder{}
	n := NewRedisNotifier(db, "outbox", logger.Nop(), rec)

	entry := domain.QueueEntry{
		ID:                   "e1",
		ShopID:               "s1",
		CustomerName:         "Ann",
		CustomerPhone:        ptr.Ptr("+100"),
		Position:             3,
		EstimatedWaitMinutes: 45,
	}
	msg := QueueJoined(entry, now)
	data, err := json.Marshal(msg)
	require.NoError(t, err)

	mock.ExpectLPush("outbox", data).SetVal(1)

	assert.NoError(t, n.Notify(context.Background(), msg))
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, 1, rec.calls[TypeQueueJoined])
	assert.Equal(t, 0, rec.errs)
}

func TestRedisNotifierDefaultKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	n := NewRedisNotifier(db, "", logger.Nop(), nil)

	mock.Regexp().ExpectLPush(DefaultKey, `.*`).SetVal(1)

	assert.NoError(t, n.Notify(context.Background(), QueueCalled(domain.QueueEntry{ID: "e1", ShopID: "s1"}, now)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisNotifierPushError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	rec := &recorder{}
	n := NewRedisNotifier(db, "outbox", logger.Nop(), rec)

	mock.Regexp().ExpectLPush("outbox", `.*`).SetErr(assert.AnError)

	err := n.Notify(context.Background(), QueueCalled(domain.QueueEntry{ID: "e1", ShopID: "s1"}, now))
	assert.ErrorIs(t, err, ErrPush)
	assert.Equal(t, 1, rec.errs)
}

func TestBookingCreatedPayload(t *testing.T) {
	b := domain.Booking{
		ID:          "b1",
		ShopID:      "s1",
		Barber:      domain.SpecificBarber("barber-7"),
		BookingDate: now,
		StartTime:   types.TimeString("14:30"),
		Status:      domain.StatusConfirmed,
		ServiceName: "Haircut",
	}

	msg := BookingCreated(b, now)

	assert.Equal(t, TypeBookingCreated, msg.Type)
	assert.Equal(t, "2024-03-04", msg.Payload["booking_date"])
	assert.Equal(t, "14:30", msg.Payload["start_time"])
	assert.Equal(t, "barber-7", msg.Payload["barber_id"])

	anyBarber := BookingCreated(domain.Booking{ID: "b2", Barber: domain.AnyBarber()}, now)
	_, ok := anyBarber.Payload["barber_id"]
	assert.False(t, ok)
}

func TestLogNotifier(t *testing.T) {
	rec := &recorder{}
	n := NewLogNotifier(logger.Nop(), rec)

	assert.NoError(t, n.Notify(context.Background(), QueueCalled(domain.QueueEntry{ID: "e1"}, now)))
	assert.Equal(t, 1, rec.calls[TypeQueueCalled])
}
