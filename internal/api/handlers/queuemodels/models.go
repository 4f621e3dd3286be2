// Package queuemodels JSON-представления живой очереди, общие для queue handlers
package queuemodels

import (
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
)

// EntryResponse запись живой очереди
type EntryResponse struct {
	ID                   string  `json:"id"`
	ShopID               string  `json:"shopId"`
	ServiceID            *string `json:"serviceId,omitempty"`
	CustomerName         string  `json:"customerName"`
	CustomerPhone        *string `json:"customerPhone,omitempty"`
	Status               string  `json:"status"`
	Position             int     `json:"position"` // 0 - не ожидает
	EstimatedWaitMinutes int     `json:"estimatedWaitMinutes"`
	DepositReference     *string `json:"depositReference,omitempty"`
	CreatedAt            string  `json:"createdAt"`
	CalledAt             *string `json:"calledAt,omitempty"`
	CompletedAt          *string `json:"completedAt,omitempty"`
}

// WarningResponse предупреждение к оценке
type WarningResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// EstimateResponse оценка ожидания в минутах
type EstimateResponse struct {
	QueueMinutes          int              `json:"queueMinutes"`
	BookingBlockedMinutes int              `json:"bookingBlockedMinutes"`
	TotalMinutes          int              `json:"totalMinutes"`
	BlockedSlots          []string         `json:"blockedSlots"`
	Warning               *WarningResponse `json:"warning,omitempty"`
}

func FromDomainEntry(e domain.QueueEntry) EntryResponse {
	return EntryResponse{
		ID:                   e.ID,
		ShopID:               e.ShopID,
		ServiceID:            e.ServiceID,
		CustomerName:         e.CustomerName,
		CustomerPhone:        e.CustomerPhone,
		Status:               string(e.Status),
		Position:             e.Position,
		EstimatedWaitMinutes: e.EstimatedWaitMinutes,
		DepositReference:     e.DepositReference,
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
		CalledAt:             formatPtr(e.CalledAt),
		CompletedAt:          formatPtr(e.CompletedAt),
	}
}

func FromEstimate(est estimator.WaitEstimate) EstimateResponse {
	resp := EstimateResponse{
		QueueMinutes:          est.QueueMinutes,
		BookingBlockedMinutes: est.BookingBlockedMinutes,
		TotalMinutes:          est.TotalMinutes,
		BlockedSlots:          make([]string, 0, len(est.BlockedSlots)),
	}
	for _, s := range est.BlockedSlots {
		resp.BlockedSlots = append(resp.BlockedSlots, s.String())
	}
	if est.Warning != nil {
		resp.Warning = &WarningResponse{
			Kind:    string(est.Warning.Kind),
			Message: est.Warning.Message,
		}
	}
	return resp
}

func formatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
