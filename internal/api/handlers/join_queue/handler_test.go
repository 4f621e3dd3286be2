package join_queue

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
	joinQueue "github.com/m04kA/SMC-BarberQueue/internal/usecase/join_queue"
	"github.com/m04kA/SMC-BarberQueue/pkg/logger"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *joinQueue.Request) (*joinQueue.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*joinQueue.Response)
	return resp, args.Error(1)
}

func newRouter(uc JoinQueueUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/shops/{shopId}/queue", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPost)
	return r
}

func doRequest(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shops/demo/queue", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := new(useCaseMock)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *joinQueue.Request) bool {
		return req.ShopID == "demo" && req.CustomerName == "Ivan" && *req.ServiceID == "beard"
	})).Return(&joinQueue.Response{
		Entry: domain.QueueEntry{
			ID:                   "e1",
			ShopID:               "demo",
			CustomerName:         "Ivan",
			Status:               domain.QueueWaiting,
			Position:             2,
			EstimatedWaitMinutes: 40,
			CreatedAt:            time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		},
		Estimate: estimator.WaitEstimate{QueueMinutes: 40, TotalMinutes: 40},
	}, nil)

	rec := doRequest(newRouter(uc), `{"customerName":"Ivan","serviceId":"beard"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp JoinQueueResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Entry.Position)
	assert.Equal(t, 40, resp.Estimate.TotalMinutes)
	uc.AssertExpectations(t)
}

func TestHandle_RefusedCarriesEstimate(t *testing.T) {
	uc := new(useCaseMock)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &joinQueue.RefusedError{
		Estimate: estimator.WaitEstimate{QueueMinutes: 200, TotalMinutes: 200},
		Reason:   "wait of 200 minutes exceeds 180",
	})

	rec := doRequest(newRouter(uc), `{"customerName":"Ivan"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp RefusedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Estimate.TotalMinutes)
	assert.Equal(t, "wait of 200 minutes exceeds 180", resp.Reason)
	assert.Equal(t, msgAdmissionRefused, resp.Error)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"bad json", `{"customerName":`, nil, http.StatusBadRequest},
		{"invalid input", `{"customerName":""}`, fmt.Errorf("%w: customer name is required", joinQueue.ErrInvalidInput), http.StatusBadRequest},
		{"shop not found", `{"customerName":"Ivan"}`, joinQueue.ErrShopNotFound, http.StatusNotFound},
		{"queue corrupted", `{"customerName":"Ivan"}`, joinQueue.ErrQueueCorrupted, http.StatusUnprocessableEntity},
		{"internal", `{"customerName":"Ivan"}`, joinQueue.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(useCaseMock)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := doRequest(newRouter(uc), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
