package domain

// Default scheduling values (minutes)
const (
	DefaultServiceMinutes      = 30
	DefaultLookaheadMinutes    = 60
	DefaultOverloadMinutes     = 120
	DefaultAdviseBookingLimit  = 180
	DefaultSlotIntervalMinutes = 30
	DefaultMinLeadMinutes      = 30
	DefaultAdvanceBookingDays  = 30 // days
)

// Business validation constants
const (
	MaxCustomerNameLength       = 100
	MaxPhoneLength              = 32
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxDepositReferenceLength   = 128
)

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"

// CalendarBlockingStatuses статусы бронирований, которые прерывают живую очередь
var CalendarBlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, освобождающие слот в календаре
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
