package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

// Schedule working hours of a shop for one weekday (0 = Sunday)
type Schedule struct {
	ShopID    string
	Weekday   time.Weekday
	OpenTime  types.TimeString
	CloseTime types.TimeString
	IsClosed  bool
}

// IsOpen returns true if the shop works on this day
func (s *Schedule) IsOpen() bool {
	return !s.IsClosed && !s.OpenTime.IsZero() && !s.CloseTime.IsZero()
}

// WeekSchedule schedules of one shop indexed by weekday
type WeekSchedule map[time.Weekday]Schedule

// NewWeekSchedule indexes schedules by weekday
func NewWeekSchedule(schedules []Schedule) WeekSchedule {
	w := make(WeekSchedule, len(schedules))
	for _, s := range schedules {
		w[s.Weekday] = s
	}
	return w
}

// For returns the schedule of the weekday of date; a missing day counts as closed
func (w WeekSchedule) For(date time.Time) Schedule {
	s, ok := w[date.Weekday()]
	if !ok {
		return Schedule{Weekday: date.Weekday(), IsClosed: true}
	}
	return s
}

// SameDay reports whether a and b fall on the same calendar day, each in its own location
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayStart truncates t to midnight in t's location
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
