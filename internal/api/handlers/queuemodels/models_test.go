package queuemodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

func TestFromEstimate(t *testing.T) {
	est := estimator.WaitEstimate{
		QueueMinutes:          40,
		BookingBlockedMinutes: 45,
		TotalMinutes:          85,
		BlockedSlots:          []types.TimeString{"10:30"},
		Warning:               &estimator.Warning{Kind: estimator.WarningInterrupting, Message: "1 booking"},
	}

	resp := FromEstimate(est)

	assert.Equal(t, 85, resp.TotalMinutes)
	assert.Equal(t, []string{"10:30"}, resp.BlockedSlots)
	assert.Equal(t, "interrupting_bookings", resp.Warning.Kind)
}

func TestFromEstimateEmptySlotsIsNotNull(t *testing.T) {
	resp := FromEstimate(estimator.WaitEstimate{})

	assert.NotNil(t, resp.BlockedSlots)
	assert.Nil(t, resp.Warning)
}

func TestFromDomainEntry(t *testing.T) {
	called := time.Date(2024, 3, 4, 10, 5, 0, 0, time.UTC)
	e := domain.QueueEntry{
		ID:        "e1",
		ShopID:    "demo",
		Status:    domain.QueueInService,
		CreatedAt: time.Date(2024, 3, 4, 9, 50, 0, 0, time.UTC),
		CalledAt:  &called,
	}

	resp := FromDomainEntry(e)

	assert.Equal(t, "in_service", resp.Status)
	assert.Equal(t, 0, resp.Position)
	assert.Equal(t, "2024-03-04T10:05:00Z", *resp.CalledAt)
	assert.Nil(t, resp.CompletedAt)
}
