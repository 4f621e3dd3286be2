package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberQueue/internal/service/bookings"
	"github.com/m04kA/SMC-BarberQueue/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberQueue/pkg/logger"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, bookingID, req)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func serve(svc BookingService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/status", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/bk1/status", strings.NewReader(body)))
	return rec
}

func TestHandle_Cancel(t *testing.T) {
	svc := new(serviceMock)
	reason := "заболел"
	svc.On("UpdateStatus", mock.Anything, "bk1", &models.UpdateStatusRequest{
		Status:             "cancelled",
		CancellationReason: &reason,
	}).Return(&models.BookingResponse{ID: "bk1", Status: "cancelled", CancellationReason: &reason}, nil)

	rec := serve(svc, `{"status":"cancelled","cancellationReason":"заболел"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad body", `status=cancelled`, nil, http.StatusBadRequest},
		{"invalid status", `{"status":"lost"}`, bookings.ErrInvalidInput, http.StatusBadRequest},
		{"not found", `{"status":"cancelled"}`, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"transition", `{"status":"confirmed"}`, bookings.ErrInvalidTransition, http.StatusConflict},
		{"internal", `{"status":"completed"}`, bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(serviceMock)
			if tt.err != nil {
				svc.On("UpdateStatus", mock.Anything, "bk1", mock.Anything).Return(nil, tt.err)
			}

			rec := serve(svc, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
