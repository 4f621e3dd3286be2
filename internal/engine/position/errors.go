package position

import "errors"

var (
	// ErrEmptyQueue AdvanceQueue called with nobody waiting
	ErrEmptyQueue = errors.New("position: no waiting entries")

	// ErrInvariantViolation the supplied snapshot breaks a queue invariant; it is never repaired
	ErrInvariantViolation = errors.New("position: queue invariant violated")

	// ErrInvalidTransition the entry cannot move to the requested status
	ErrInvalidTransition = errors.New("position: invalid status transition")

	// ErrEntryNotFound the entry is not part of the snapshot
	ErrEntryNotFound = errors.New("position: entry not found")
)
