package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// bookingTransitions target status -> allowed source statuses
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusConfirmed:  {StatusPending},
	StatusInProgress: {StatusPending, StatusConfirmed},
	StatusCompleted:  {StatusInProgress},
	StatusCancelled:  {StatusPending, StatusConfirmed, StatusInProgress},
	StatusNoShow:     {StatusPending, StatusConfirmed, StatusInProgress},
}

// ParseBookingStatus validates a status coming from the outside
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch st := BookingStatus(s); st {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return st, true
	}
	return "", false
}

// CanTransitionBooking reports whether a booking may move from one status to another
func CanTransitionBooking(from, to BookingStatus) bool {
	for _, allowed := range bookingTransitions[to] {
		if allowed == from {
			return true
		}
	}
	return false
}

// IsTerminal returns true for completed, cancelled and no_show
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Booking represents a fixed-time appointment at a shop
type Booking struct {
	ID              string
	ShopID          string
	Barber          BarberPreference
	ServiceID       string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	CustomerName     string
	CustomerPhone    *string
	DepositReference *string

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// BlocksQueue returns true if the booking can still interrupt the walk-in queue
func (b *Booking) BlocksQueue() bool {
	for _, s := range CalendarBlockingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// StartsAt returns the booking start as an instant in the location of BookingDate
func (b *Booking) StartsAt() (time.Time, error) {
	return b.StartTime.On(b.BookingDate)
}

// InitialBookingStatus confirmed when a deposit hold is attached, otherwise pending
func InitialBookingStatus(depositReference *string) BookingStatus {
	if depositReference != nil && *depositReference != "" {
		return StatusConfirmed
	}
	return StatusPending
}

// ShopBookingsFilter фильтр для получения бронирований парикмахерской
type ShopBookingsFilter struct {
	ShopID          string         // Обязательный параметр
	Date            *time.Time     // Конкретная дата (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show
}
