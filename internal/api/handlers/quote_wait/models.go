package quote_wait

import (
	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers/queuemodels"
	quoteWait "github.com/m04kA/SMC-BarberQueue/internal/usecase/quote_wait"
)

// QuoteResponse HTTP response model: встать в очередь или записаться
type QuoteResponse struct {
	Estimate       queuemodels.EstimateResponse `json:"estimate"`
	CanJoin        bool                         `json:"canJoin"`
	Reason         *string                      `json:"reason,omitempty"`
	WaitingCount   int                          `json:"waitingCount"`
	ServiceMinutes int                          `json:"serviceMinutes"`
}

func FromUseCaseResponse(resp *quoteWait.Response) *QuoteResponse {
	return &QuoteResponse{
		Estimate:       queuemodels.FromEstimate(resp.Estimate),
		CanJoin:        resp.Advice.CanJoin,
		Reason:         resp.Advice.Reason,
		WaitingCount:   resp.WaitingCount,
		ServiceMinutes: resp.ServiceMinutes,
	}
}
