package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberQueue/internal/service/bookings"
	"github.com/m04kA/SMC-BarberQueue/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberQueue/pkg/logger"
)

type stubService struct {
	booking *models.BookingResponse
	err     error
}

func (s *stubService) GetByID(_ context.Context, id string) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	b := *s.booking
	b.ID = id
	return &b, nil
}

func serve(svc BookingService, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&stubService{booking: &models.BookingResponse{Status: "confirmed", StartTime: "10:00"}}, "bk1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"bk1"`)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestHandle_NotFound(t *testing.T) {
	rec := serve(&stubService{err: bookings.ErrBookingNotFound}, "missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_Internal(t *testing.T) {
	rec := serve(&stubService{err: bookings.ErrInternal}, "bk1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
