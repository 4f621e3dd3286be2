package quote_wait

import (
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/policy"
)

// Request запрос оценки ожидания без постановки в очередь
type Request struct {
	ShopID    string
	ServiceID *string
}

// Response оценка и совет "встать в очередь или записаться"
type Response struct {
	Estimate       estimator.WaitEstimate
	Advice         policy.Advice
	WaitingCount   int
	ServiceMinutes int
}
