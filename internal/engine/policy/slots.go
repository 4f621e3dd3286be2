package policy

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

// GenerateSlots генерирует все начала слотов в интервале [openTime, closeTime) с шагом interval.
// Пустой результат (openTime >= closeTime) - не ошибка.
func GenerateSlots(openTime, closeTime types.TimeString, interval int) ([]types.TimeString, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval %d", ErrInvalidSlotRange, interval)
	}
	openMin, err := openTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", ErrInvalidSlotRange, err)
	}
	closeMin, err := closeTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: close: %v", ErrInvalidSlotRange, err)
	}

	slots := make([]types.TimeString, 0)
	for m := openMin; m < closeMin; m += interval {
		slot, err := types.FromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// FilterLeadTime оставляет слоты, начинающиеся не раньше now + lead.
// Для прошедшей даты слотов нет, для будущей фильтр не применяется.
// Календарный день date сравнивается с днём now в локации now.
func FilterLeadTime(slots []types.TimeString, date, now time.Time, leadMinutes int) []types.TimeString {
	day := calendarDay(date, now.Location())
	today := domain.DayStart(now)

	switch {
	case day.Before(today):
		return []types.TimeString{}
	case day.After(today):
		return slots
	}

	minAllowed := now.Add(time.Duration(leadMinutes) * time.Minute)
	out := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		start, err := slot.On(today)
		if err != nil {
			continue
		}
		if !start.Before(minAllowed) {
			out = append(out, slot)
		}
	}
	return out
}

// RemoveBooked точная разность множеств по времени начала.
// Пересечение интервалов разной длины не проверяется.
func RemoveBooked(slots, booked []types.TimeString) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	out := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, ok := taken[slot]; !ok {
			out = append(out, slot)
		}
	}
	return out
}

// BookedTimes времена начала активных бронирований на дату, занимающих кресло barber
func BookedTimes(bookings []domain.Booking, date time.Time, barber domain.BarberPreference) []types.TimeString {
	var out []types.TimeString
	for i := range bookings {
		b := &bookings[i]
		if !b.IsActive() || !domain.SameDay(b.BookingDate, date) {
			continue
		}
		if !barber.Collides(b.Barber) {
			continue
		}
		out = append(out, b.StartTime)
	}
	return out
}

// SlotQuery входные данные для расчёта свободных слотов одного дня
type SlotQuery struct {
	Schedule        domain.Schedule
	Date            time.Time
	Now             time.Time
	Barber          domain.BarberPreference
	Bookings        []domain.Booking
	IntervalMinutes int
	MinLeadMinutes  int
}

// AvailableSlots генерация, фильтр по времени до начала и удаление занятых слотов.
// Выходной день даёт пустой список.
func AvailableSlots(q SlotQuery) ([]types.TimeString, error) {
	if !q.Schedule.IsOpen() {
		return []types.TimeString{}, nil
	}

	interval := q.IntervalMinutes
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}

	slots, err := GenerateSlots(q.Schedule.OpenTime, q.Schedule.CloseTime, interval)
	if err != nil {
		return nil, err
	}
	slots = FilterLeadTime(slots, q.Date, q.Now, q.MinLeadMinutes)
	return RemoveBooked(slots, BookedTimes(q.Bookings, q.Date, q.Barber)), nil
}

// DetectConflict ErrSlotTaken, если на start уже есть активное бронирование для того же кресла
func DetectConflict(bookings []domain.Booking, barber domain.BarberPreference, date time.Time, start types.TimeString) error {
	for _, booked := range BookedTimes(bookings, date, barber) {
		if booked == start {
			return fmt.Errorf("%w: %s %s barber=%s", ErrSlotTaken, date.Format(domain.DateFormat), start, barber)
		}
	}
	return nil
}

// CheckBookable проверяет, что start можно забронировать в рамках q.
// Порядок проверок: выходной, прошедшая дата, сетка слотов, время до начала, конфликт.
func CheckBookable(q SlotQuery, start types.TimeString) error {
	if !q.Schedule.IsOpen() {
		return ErrShopClosed
	}
	if calendarDay(q.Date, q.Now.Location()).Before(domain.DayStart(q.Now)) {
		return ErrDateInPast
	}

	interval := q.IntervalMinutes
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}
	all, err := GenerateSlots(q.Schedule.OpenTime, q.Schedule.CloseTime, interval)
	if err != nil {
		return err
	}
	if !contains(all, start) {
		return fmt.Errorf("%w: %s", ErrNotASlot, start)
	}
	if !contains(FilterLeadTime([]types.TimeString{start}, q.Date, q.Now, q.MinLeadMinutes), start) {
		return fmt.Errorf("%w: %s", ErrLeadTimeTooShort, start)
	}
	return DetectConflict(q.Bookings, q.Barber, q.Date, start)
}

func contains(slots []types.TimeString, t types.TimeString) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

// calendarDay the Y-M-D of date as midnight in loc
func calendarDay(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
