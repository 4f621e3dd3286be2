// Package position keeps the walk-in queue of a shop ordered.
//
// Position is the rank among waiting entries: the waiting set of a shop always
// holds exactly the positions 1..N. An entry leaves the waiting set when it is
// called (in_service) or reaches a terminal status; its position is then cleared
// to 0 and every waiting entry behind it moves up by one. At most one entry per
// shop is in_service.
//
// All functions are pure: they take a snapshot and return a Plan describing the
// records to write back. Callers must serialize operations per shop.
package position

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// Plan result of a queue operation
type Plan struct {
	// Entry the entry the operation was about, in its new state
	Entry domain.QueueEntry

	// Renumbered other entries whose position changed
	Renumbered []domain.QueueEntry

	// Snapshot the full queue after the operation
	Snapshot []domain.QueueEntry

	// Changed false when the operation was a no-op
	Changed bool
}

// NewEntry customer data for AdmitEntry
type NewEntry struct {
	ID               string
	ServiceID        *string
	CustomerName     string
	CustomerPhone    *string
	DepositReference *string
}

// ValidateSnapshot checks the invariants of a shop's queue snapshot.
// Terminal entries are allowed and ignored apart from the shop check.
func ValidateSnapshot(shopID string, snapshot []domain.QueueEntry) error {
	ids := make(map[string]struct{}, len(snapshot))
	var waiting []int
	inService := 0

	for i := range snapshot {
		e := &snapshot[i]
		if e.ShopID != shopID {
			return fmt.Errorf("%w: entry %s belongs to shop %s, expected %s", ErrInvariantViolation, e.ID, e.ShopID, shopID)
		}
		if _, dup := ids[e.ID]; dup {
			return fmt.Errorf("%w: duplicate entry id %s", ErrInvariantViolation, e.ID)
		}
		ids[e.ID] = struct{}{}

		switch e.Status {
		case domain.QueueWaiting:
			waiting = append(waiting, e.Position)
		case domain.QueueInService:
			inService++
		}
	}

	if inService > 1 {
		return fmt.Errorf("%w: %d entries in service", ErrInvariantViolation, inService)
	}

	sort.Ints(waiting)
	for i, p := range waiting {
		if p != i+1 {
			return fmt.Errorf("%w: waiting positions %v are not 1..%d", ErrInvariantViolation, waiting, len(waiting))
		}
	}
	return nil
}

// NextPosition returns max(position of active entries) + 1, or 1 for an empty queue
func NextPosition(snapshot []domain.QueueEntry) int {
	highest := 0
	for i := range snapshot {
		if snapshot[i].Status.IsActive() && snapshot[i].Position > highest {
			highest = snapshot[i].Position
		}
	}
	return highest + 1
}

// AdmitEntry builds a waiting entry at NextPosition carrying the estimated wait
func AdmitEntry(shopID string, snapshot []domain.QueueEntry, in NewEntry, estimatedWait int, now time.Time) (Plan, error) {
	if err := ValidateSnapshot(shopID, snapshot); err != nil {
		return Plan{}, err
	}
	if estimatedWait < 0 {
		estimatedWait = 0
	}

	entry := domain.QueueEntry{
		ID:                   in.ID,
		ShopID:               shopID,
		ServiceID:            in.ServiceID,
		CustomerName:         in.CustomerName,
		CustomerPhone:        in.CustomerPhone,
		Status:               domain.QueueWaiting,
		Position:             NextPosition(snapshot),
		EstimatedWaitMinutes: estimatedWait,
		DepositReference:     in.DepositReference,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	next := cloneAll(snapshot)
	next = append(next, entry.Clone())

	return Plan{Entry: entry, Snapshot: next, Changed: true}, nil
}

// AdvanceQueue calls the waiting entry with the lowest position.
// If someone is already in service it is returned unchanged (Changed == false).
func AdvanceQueue(shopID string, snapshot []domain.QueueEntry, now time.Time) (Plan, error) {
	if err := ValidateSnapshot(shopID, snapshot); err != nil {
		return Plan{}, err
	}

	next := cloneAll(snapshot)

	first := -1
	for i := range next {
		switch next[i].Status {
		case domain.QueueInService:
			return Plan{Entry: next[i].Clone(), Snapshot: next}, nil
		case domain.QueueWaiting:
			if first < 0 || next[i].Position < next[first].Position {
				first = i
			}
		}
	}
	if first < 0 {
		return Plan{}, ErrEmptyQueue
	}

	called := &next[first]
	removed := called.Position
	called.Status = domain.QueueInService
	called.Position = 0
	called.CalledAt = &now
	called.UpdatedAt = now

	renumbered := renumber(next, removed, now)
	return Plan{Entry: called.Clone(), Renumbered: renumbered, Snapshot: next, Changed: true}, nil
}

// RenumberAfterRemoval decrements every waiting position greater than removedPosition.
// The removed entry must already be out of the waiting set. The input is not modified.
func RenumberAfterRemoval(snapshot []domain.QueueEntry, removedPosition int) []domain.QueueEntry {
	next := cloneAll(snapshot)
	for i := range next {
		if next[i].Status == domain.QueueWaiting && next[i].Position > removedPosition {
			next[i].Position--
		}
	}
	return next
}

// CompleteEntry in_service -> completed
func CompleteEntry(shopID string, snapshot []domain.QueueEntry, entryID string, now time.Time) (Plan, error) {
	return Finish(shopID, snapshot, entryID, domain.QueueCompleted, now)
}

// MarkNoShow waiting or in_service -> no_show
func MarkNoShow(shopID string, snapshot []domain.QueueEntry, entryID string, now time.Time) (Plan, error) {
	return Finish(shopID, snapshot, entryID, domain.QueueNoShow, now)
}

// Cancel waiting -> cancelled
func Cancel(shopID string, snapshot []domain.QueueEntry, entryID string, now time.Time) (Plan, error) {
	return Finish(shopID, snapshot, entryID, domain.QueueCancelled, now)
}

// Finish moves an entry to a terminal status and closes the gap it leaves in the waiting set
func Finish(shopID string, snapshot []domain.QueueEntry, entryID string, target domain.QueueStatus, now time.Time) (Plan, error) {
	if !target.IsTerminal() {
		return Plan{}, fmt.Errorf("%w: %s is not a terminal status", ErrInvalidTransition, target)
	}
	if err := ValidateSnapshot(shopID, snapshot); err != nil {
		return Plan{}, err
	}

	next := cloneAll(snapshot)
	idx := -1
	for i := range next {
		if next[i].ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Plan{}, fmt.Errorf("%w: id=%s", ErrEntryNotFound, entryID)
	}

	e := &next[idx]
	if !ValidTransition(e.Status, target) {
		return Plan{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, e.Status, target)
	}

	wasWaiting := e.Status == domain.QueueWaiting
	removed := e.Position

	e.Status = target
	e.Position = 0
	e.CompletedAt = &now
	e.UpdatedAt = now

	var renumbered []domain.QueueEntry
	if wasWaiting {
		renumbered = renumber(next, removed, now)
	}
	return Plan{Entry: e.Clone(), Renumbered: renumbered, Snapshot: next, Changed: true}, nil
}

// WaitingInOrder returns the waiting entries sorted by position
func WaitingInOrder(snapshot []domain.QueueEntry) []domain.QueueEntry {
	var out []domain.QueueEntry
	for i := range snapshot {
		if snapshot[i].Status == domain.QueueWaiting {
			out = append(out, snapshot[i].Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// CurrentInService returns the entry being served, if any
func CurrentInService(snapshot []domain.QueueEntry) (domain.QueueEntry, bool) {
	for i := range snapshot {
		if snapshot[i].Status == domain.QueueInService {
			return snapshot[i].Clone(), true
		}
	}
	return domain.QueueEntry{}, false
}

// renumber shifts waiting entries behind removed in place and returns copies of the shifted ones
func renumber(entries []domain.QueueEntry, removed int, now time.Time) []domain.QueueEntry {
	var changed []domain.QueueEntry
	for i := range entries {
		if entries[i].Status == domain.QueueWaiting && entries[i].Position > removed {
			entries[i].Position--
			entries[i].UpdatedAt = now
			changed = append(changed, entries[i].Clone())
		}
	}
	return changed
}

func cloneAll(snapshot []domain.QueueEntry) []domain.QueueEntry {
	out := make([]domain.QueueEntry, len(snapshot), len(snapshot)+1)
	for i := range snapshot {
		out[i] = snapshot[i].Clone()
	}
	return out
}
