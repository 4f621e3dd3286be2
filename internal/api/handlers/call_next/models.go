package call_next

import (
	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers/queuemodels"
	callNext "github.com/m04kA/SMC-BarberQueue/internal/usecase/call_next"
)

// CallNextResponse HTTP response model
type CallNextResponse struct {
	// Called false: мастер еще занят, в кресле прежний клиент
	Called  bool                      `json:"called"`
	Entry   queuemodels.EntryResponse `json:"entry"`
	Waiting int                       `json:"waiting"`
}

func FromUseCaseResponse(resp *callNext.Response) *CallNextResponse {
	return &CallNextResponse{
		Called:  resp.Called,
		Entry:   queuemodels.FromDomainEntry(resp.Entry),
		Waiting: resp.Waiting,
	}
}
