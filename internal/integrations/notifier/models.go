package notifier

import (
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// Типы сообщений outbox
const (
	TypeQueueJoined    = "queue.joined"
	TypeQueueCalled    = "queue.called"
	TypeBookingCreated = "booking.created"
)

// Message сообщение, которое забирает внешний сервис рассылки
type Message struct {
	Type          string                 `json:"type"`
	ShopID        string                 `json:"shop_id"`
	EntityID      string                 `json:"entity_id"`
	CustomerName  string                 `json:"customer_name"`
	CustomerPhone *string                `json:"customer_phone,omitempty"`
	Payload       map[string]interface{} `json:"payload,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// QueueJoined сообщение о постановке в живую очередь
func QueueJoined(entry domain.QueueEntry, now time.Time) Message {
	return Message{
		Type:          TypeQueueJoined,
		ShopID:        entry.ShopID,
		EntityID:      entry.ID,
		CustomerName:  entry.CustomerName,
		CustomerPhone: entry.CustomerPhone,
		Payload: map[string]interface{}{
			"position":               entry.Position,
			"estimated_wait_minutes": entry.EstimatedWaitMinutes,
		},
		CreatedAt: now,
	}
}

// QueueCalled сообщение о вызове клиента к мастеру
func QueueCalled(entry domain.QueueEntry, now time.Time) Message {
	return Message{
		Type:          TypeQueueCalled,
		ShopID:        entry.ShopID,
		EntityID:      entry.ID,
		CustomerName:  entry.CustomerName,
		CustomerPhone: entry.CustomerPhone,
		CreatedAt:     now,
	}
}

// BookingCreated сообщение о новой записи
func BookingCreated(b domain.Booking, now time.Time) Message {
	payload := map[string]interface{}{
		"booking_date": b.BookingDate.Format(domain.DateFormat),
		"start_time":   b.StartTime.String(),
		"status":       string(b.Status),
		"service_name": b.ServiceName,
	}
	if id, ok := b.Barber.BarberID(); ok {
		payload["barber_id"] = id
	}
	return Message{
		Type:          TypeBookingCreated,
		ShopID:        b.ShopID,
		EntityID:      b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Payload:       payload,
		CreatedAt:     now,
	}
}
