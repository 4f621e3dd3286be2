package policy

import (
	"fmt"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
)

// Advice answer to "join the queue or book an appointment?"
type Advice struct {
	CanJoin bool
	// Reason refusal explanation, or the estimate warning when joining is allowed
	Reason *string
}

// ShouldAdviseBooking refuses walk-in admission when the total wait exceeds 180 minutes
func ShouldAdviseBooking(est estimator.WaitEstimate) Advice {
	return AdviseWithLimit(est, domain.DefaultAdviseBookingLimit)
}

// AdviseWithLimit is ShouldAdviseBooking with a configurable limit in minutes
func AdviseWithLimit(est estimator.WaitEstimate, limitMinutes int) Advice {
	if limitMinutes <= 0 {
		limitMinutes = domain.DefaultAdviseBookingLimit
	}

	if est.TotalMinutes > limitMinutes {
		reason := fmt.Sprintf(
			"Expected wait of %d minutes exceeds %d minutes. Please book an appointment instead.",
			est.TotalMinutes, limitMinutes)
		return Advice{CanJoin: false, Reason: &reason}
	}

	if est.Warning != nil {
		reason := est.Warning.Message
		return Advice{CanJoin: true, Reason: &reason}
	}
	return Advice{CanJoin: true}
}
