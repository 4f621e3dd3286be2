// Package estimator predicts how long a walk-in customer waits for the barber.
//
// The wait is the load of the live queue plus the appointments expected to
// interrupt it. An appointment interrupts when its start falls within
// [0, queue + requested + lookahead] minutes from now. Only the start of the
// appointment is tested against that window, so bookings near the boundary can
// be over or under counted; this approximation is kept on purpose.
package estimator

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

// WarningKind classifies the single warning an estimate may carry
type WarningKind string

const (
	WarningOverload     WarningKind = "overload"
	WarningInterrupting WarningKind = "interrupting_bookings"
)

// Warning non-blocking note attached to an estimate
type Warning struct {
	Kind    WarningKind
	Message string
}

// WaitEstimate result of an estimation
type WaitEstimate struct {
	QueueMinutes          int
	BookingBlockedMinutes int
	TotalMinutes          int
	BlockedSlots          []types.TimeString
	Warning               *Warning

	// UnknownServiceIDs service ids that were missing from the catalog and
	// were counted with the default duration. The caller is expected to log them.
	UnknownServiceIDs []string
}

// Config thresholds in minutes. Zero values fall back to the defaults.
type Config struct {
	DefaultServiceMinutes  int
	LookaheadMinutes       int
	OverloadWarningMinutes int
}

// DefaultConfig 30 / 60 / 120
func DefaultConfig() Config {
	return Config{
		DefaultServiceMinutes:  domain.DefaultServiceMinutes,
		LookaheadMinutes:       domain.DefaultLookaheadMinutes,
		OverloadWarningMinutes: domain.DefaultOverloadMinutes,
	}
}

// Estimator is stateless apart from its thresholds and safe for concurrent use
type Estimator struct {
	cfg Config
}

func New(cfg Config) *Estimator {
	def := DefaultConfig()
	if cfg.DefaultServiceMinutes <= 0 {
		cfg.DefaultServiceMinutes = def.DefaultServiceMinutes
	}
	if cfg.LookaheadMinutes <= 0 {
		cfg.LookaheadMinutes = def.LookaheadMinutes
	}
	if cfg.OverloadWarningMinutes <= 0 {
		cfg.OverloadWarningMinutes = def.OverloadWarningMinutes
	}
	return &Estimator{cfg: cfg}
}

// Config returns the effective thresholds
func (e *Estimator) Config() Config {
	return e.cfg
}

// ServiceMinutes resolves a requested service against the catalog.
// A nil id is the "no preference" walk-in and gets the default duration.
func (e *Estimator) ServiceMinutes(catalog domain.Catalog, serviceID *string) (int, bool) {
	return catalog.Duration(serviceID, e.cfg.DefaultServiceMinutes)
}

// EstimateWait predicts the wait of a customer joining the queue of shopID now.
// Entries and bookings of other shops are ignored.
func (e *Estimator) EstimateWait(
	shopID string,
	queue []domain.QueueEntry,
	bookings []domain.Booking,
	catalog domain.Catalog,
	requestedMinutes int,
	now time.Time,
) WaitEstimate {
	if requestedMinutes <= 0 {
		requestedMinutes = e.cfg.DefaultServiceMinutes
	}

	unknown := newIDSet()
	queueMinutes := 0
	for i := range queue {
		entry := &queue[i]
		if entry.ShopID != shopID || !entry.Status.IsActive() {
			continue
		}
		queueMinutes += e.entryMinutes(catalog, entry, unknown)
	}

	return e.finish(shopID, queueMinutes, requestedMinutes, bookings, now, unknown)
}

// EstimateForEntry recomputes the wait of an existing waiting entry: the load
// ahead of it (the customer in service and lower positions) plus interruptions.
func (e *Estimator) EstimateForEntry(
	shopID string,
	queue []domain.QueueEntry,
	bookings []domain.Booking,
	catalog domain.Catalog,
	entryID string,
	now time.Time,
) (WaitEstimate, error) {
	var target *domain.QueueEntry
	for i := range queue {
		if queue[i].ID == entryID && queue[i].ShopID == shopID {
			target = &queue[i]
			break
		}
	}
	if target == nil {
		return WaitEstimate{}, fmt.Errorf("%w: id=%s", ErrEntryNotFound, entryID)
	}
	if target.Status != domain.QueueWaiting {
		return WaitEstimate{}, fmt.Errorf("%w: id=%s status=%s", ErrEntryNotWaiting, entryID, target.Status)
	}

	unknown := newIDSet()
	ahead := 0
	for i := range queue {
		entry := &queue[i]
		if entry.ShopID != shopID || entry.ID == entryID {
			continue
		}
		switch {
		case entry.Status == domain.QueueInService:
		case entry.Status == domain.QueueWaiting && entry.Position < target.Position:
		default:
			continue
		}
		ahead += e.entryMinutes(catalog, entry, unknown)
	}

	own := e.entryMinutes(catalog, target, unknown)
	return e.finish(shopID, ahead, own, bookings, now, unknown), nil
}

func (e *Estimator) entryMinutes(catalog domain.Catalog, entry *domain.QueueEntry, unknown *idSet) int {
	minutes, known := catalog.Duration(entry.ServiceID, e.cfg.DefaultServiceMinutes)
	if !known {
		unknown.add(*entry.ServiceID)
	}
	return minutes
}

func (e *Estimator) finish(
	shopID string,
	queueMinutes, requestedMinutes int,
	bookings []domain.Booking,
	now time.Time,
	unknown *idSet,
) WaitEstimate {
	est := WaitEstimate{
		QueueMinutes:      queueMinutes,
		UnknownServiceIDs: unknown.sorted(),
	}

	window := queueMinutes + requestedMinutes + e.cfg.LookaheadMinutes
	for _, ub := range upcoming(shopID, bookings, now) {
		offset := int(ub.start.Sub(now) / time.Minute)
		if offset < 0 || offset > window {
			continue
		}
		duration := ub.booking.DurationMinutes
		if duration <= 0 {
			duration = e.cfg.DefaultServiceMinutes
		}
		est.BookingBlockedMinutes += duration
		est.BlockedSlots = append(est.BlockedSlots, types.NewTimeString(ub.start))
	}

	est.TotalMinutes = est.QueueMinutes + est.BookingBlockedMinutes
	est.Warning = e.warning(est)
	return est
}

func (e *Estimator) warning(est WaitEstimate) *Warning {
	if est.TotalMinutes > e.cfg.OverloadWarningMinutes {
		return &Warning{
			Kind: WarningOverload,
			Message: fmt.Sprintf(
				"Expected wait is about %d minutes. Booking an appointment is recommended.",
				est.TotalMinutes),
		}
	}
	if n := len(est.BlockedSlots); n > 0 {
		return &Warning{
			Kind:    WarningInterrupting,
			Message: fmt.Sprintf("%d scheduled appointment(s) may delay the queue.", n),
		}
	}
	return nil
}

type upcomingBooking struct {
	booking *domain.Booking
	start   time.Time
}

// upcoming returns today's pending/confirmed bookings of the shop starting at or after now, by start
func upcoming(shopID string, bookings []domain.Booking, now time.Time) []upcomingBooking {
	var out []upcomingBooking
	for i := range bookings {
		b := &bookings[i]
		if b.ShopID != shopID || !b.BlocksQueue() || !domain.SameDay(b.BookingDate, now) {
			continue
		}
		start, err := b.StartTime.On(now)
		if err != nil || start.Before(now) {
			continue
		}
		out = append(out, upcomingBooking{booking: b, start: start})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].start.Equal(out[j].start) {
			return out[i].booking.ID < out[j].booking.ID
		}
		return out[i].start.Before(out[j].start)
	})
	return out
}

type idSet struct {
	seen map[string]struct{}
}

func newIDSet() *idSet {
	return &idSet{seen: map[string]struct{}{}}
}

func (s *idSet) add(id string) {
	s.seen[id] = struct{}{}
}

func (s *idSet) sorted() []string {
	if len(s.seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.seen))
	for id := range s.seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
