package join_queue

import (
	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers/queuemodels"
	joinQueue "github.com/m04kA/SMC-BarberQueue/internal/usecase/join_queue"
)

// JoinQueueRequest HTTP request model
type JoinQueueRequest struct {
	ServiceID        *string `json:"serviceId,omitempty"`
	CustomerName     string  `json:"customerName"`
	CustomerPhone    *string `json:"customerPhone,omitempty"`
	DepositReference *string `json:"depositReference,omitempty"`
}

// JoinQueueResponse HTTP response model
type JoinQueueResponse struct {
	Entry    queuemodels.EntryResponse    `json:"entry"`
	Estimate queuemodels.EstimateResponse `json:"estimate"`
	Advice   *string                      `json:"advice,omitempty"`
}

// RefusedResponse тело 409: очередь слишком длинная, лучше записаться
type RefusedResponse struct {
	Error    string                       `json:"error"`
	Reason   string                       `json:"reason"`
	Estimate queuemodels.EstimateResponse `json:"estimate"`
}

func (r *JoinQueueRequest) ToUseCaseRequest(shopID string) *joinQueue.Request {
	return &joinQueue.Request{
		ShopID:           shopID,
		ServiceID:        r.ServiceID,
		CustomerName:     r.CustomerName,
		CustomerPhone:    r.CustomerPhone,
		DepositReference: r.DepositReference,
	}
}

func FromUseCaseResponse(resp *joinQueue.Response) *JoinQueueResponse {
	return &JoinQueueResponse{
		Entry:    queuemodels.FromDomainEntry(resp.Entry),
		Estimate: queuemodels.FromEstimate(resp.Estimate),
		Advice:   resp.Advice,
	}
}
