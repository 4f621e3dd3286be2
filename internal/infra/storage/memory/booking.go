package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/booking"
)

// BookingRepository in-memory bookings
type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.store.bookings[booking.ID] = cloneBooking(*booking)
	return booking, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	c := cloneBooking(b)
	return &c, nil
}

func (r *BookingRepository) GetByShopWithFilter(_ context.Context, filter domain.ShopBookingsFilter) ([]domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, b := range r.store.bookings {
		if b.ShopID != filter.ShopID {
			continue
		}
		if filter.Date != nil && !domain.SameDay(b.BookingDate, *filter.Date) {
			continue
		}
		if filter.Status != nil {
			if b.Status != *filter.Status {
				continue
			}
		} else if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		out = append(out, cloneBooking(b))
	}

	sort.Slice(out, func(i, j int) bool {
		if !domain.SameDay(out[i].BookingDate, out[j].BookingDate) {
			if filter.Date != nil {
				return out[i].BookingDate.Before(out[j].BookingDate)
			}
			return out[i].BookingDate.After(out[j].BookingDate)
		}
		if out[i].StartTime != out[j].StartTime {
			if filter.Date != nil {
				return out[i].StartTime < out[j].StartTime
			}
			return out[i].StartTime > out[j].StartTime
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus, reason *string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}

	now := time.Now()
	b.Status = status
	b.UpdatedAt = now
	if status == domain.StatusCancelled {
		b.CancellationReason = reason
		b.CancelledAt = &now
	}
	r.store.bookings[id] = cloneBooking(b)
	return nil
}

func cloneBooking(b domain.Booking) domain.Booking {
	c := b
	c.CustomerPhone = copyPtr(b.CustomerPhone)
	c.DepositReference = copyPtr(b.DepositReference)
	c.Notes = copyPtr(b.Notes)
	c.CancellationReason = copyPtr(b.CancellationReason)
	c.CancelledAt = copyPtr(b.CancelledAt)
	return c
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
