package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberQueue/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberQueue/pkg/logger"
)

type stubUseCase struct {
	lastReq *getAvailableSlots.Request
	err     error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &getAvailableSlots.Response{
		Date:   req.Date,
		ShopID: req.ShopID,
		Barber: domain.BarberFromPtr(req.BarberID),
		Slots: []domain.AvailableSlot{
			{StartTime: "09:00", DurationMinutes: 30},
			{StartTime: "09:30", DurationMinutes: 30},
		},
	}, nil
}

func serve(uc GetAvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/shops/{shopId}/available-slots", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_ParsesQuery(t *testing.T) {
	uc := &stubUseCase{}

	rec := serve(uc, "/api/v1/shops/demo/available-slots?date=2024-03-04&barberId=b1&serviceId=haircut&interval=15")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), uc.lastReq.Date)
	assert.Equal(t, "b1", *uc.lastReq.BarberID)
	assert.Equal(t, "haircut", *uc.lastReq.ServiceID)
	assert.Equal(t, 15, uc.lastReq.IntervalMinutes)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03-04", resp.Date)
	assert.Equal(t, "b1", *resp.BarberID)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:30", resp.Slots[1].StartTime)
}

func TestHandle_AnyBarber(t *testing.T) {
	uc := &stubUseCase{}

	rec := serve(uc, "/api/v1/shops/demo/available-slots?date=2024-03-04")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.lastReq.BarberID)
	assert.NotContains(t, rec.Body.String(), "barberId")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"missing date", "/api/v1/shops/demo/available-slots", nil, http.StatusBadRequest},
		{"bad date", "/api/v1/shops/demo/available-slots?date=04.03.2024", nil, http.StatusBadRequest},
		{"bad interval", "/api/v1/shops/demo/available-slots?date=2024-03-04&interval=x", nil, http.StatusBadRequest},
		{"shop not found", "/api/v1/shops/nope/available-slots?date=2024-03-04", getAvailableSlots.ErrShopNotFound, http.StatusNotFound},
		{"service not found", "/api/v1/shops/demo/available-slots?date=2024-03-04&serviceId=x", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"invalid input", "/api/v1/shops/demo/available-slots?date=2024-03-04&interval=-5", getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/api/v1/shops/demo/available-slots?date=2024-03-04", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}

			rec := serve(uc, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
