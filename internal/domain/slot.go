package domain

import "github.com/m04kA/SMC-BarberQueue/pkg/types"

// AvailableSlot represents a start time open for booking
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}
