package finish_entry

import (
	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers/queuemodels"
	finishEntry "github.com/m04kA/SMC-BarberQueue/internal/usecase/finish_entry"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // completed, no_show, cancelled
}

// FinishEntryResponse HTTP response model
type FinishEntryResponse struct {
	Entry   queuemodels.EntryResponse `json:"entry"`
	Shifted int                       `json:"shifted"`
}

func FromUseCaseResponse(resp *finishEntry.Response) *FinishEntryResponse {
	return &FinishEntryResponse{
		Entry:   queuemodels.FromDomainEntry(resp.Entry),
		Shifted: resp.Shifted,
	}
}
