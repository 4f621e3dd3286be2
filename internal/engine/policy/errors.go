package policy

import "errors"

var (
	// ErrSlotTaken an active booking already starts at this time for a colliding barber
	ErrSlotTaken = errors.New("policy: slot already taken")

	// ErrInvalidSlotRange malformed open/close time or non-positive interval
	ErrInvalidSlotRange = errors.New("policy: invalid slot range")

	ErrShopClosed       = errors.New("policy: shop is closed on this date")
	ErrNotASlot         = errors.New("policy: start time is not a slot of this day")
	ErrDateInPast       = errors.New("policy: date is in the past")
	ErrLeadTimeTooShort = errors.New("policy: start time is too soon")
)
