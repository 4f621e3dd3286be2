package get_queue

import (
	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers/queuemodels"
	getQueue "github.com/m04kA/SMC-BarberQueue/internal/usecase/get_queue"
)

// WaitingResponse ожидающий клиент с актуальной оценкой
type WaitingResponse struct {
	Entry    queuemodels.EntryResponse    `json:"entry"`
	Estimate queuemodels.EstimateResponse `json:"estimate"`
}

// QueueResponse HTTP response model
type QueueResponse struct {
	ShopID    string                     `json:"shopId"`
	InService *queuemodels.EntryResponse `json:"inService,omitempty"`
	Waiting   []WaitingResponse          `json:"waiting"`
	Refreshed int                        `json:"refreshed"`
}

func FromUseCaseResponse(resp *getQueue.Response) *QueueResponse {
	out := &QueueResponse{
		ShopID:    resp.ShopID,
		Waiting:   make([]WaitingResponse, 0, len(resp.Waiting)),
		Refreshed: resp.Refreshed,
	}
	if resp.InService != nil {
		e := queuemodels.FromDomainEntry(*resp.InService)
		out.InService = &e
	}
	for _, w := range resp.Waiting {
		out.Waiting = append(out.Waiting, WaitingResponse{
			Entry:    queuemodels.FromDomainEntry(w.Entry),
			Estimate: queuemodels.FromEstimate(w.Estimate),
		})
	}
	return out
}
