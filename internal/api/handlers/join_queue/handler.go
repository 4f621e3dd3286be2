package join_queue

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers"
	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers/queuemodels"
	joinQueue "github.com/m04kA/SMC-BarberQueue/internal/usecase/join_queue"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "имя клиента обязательно"
	msgShopNotFound       = "парикмахерская не найдена"
	msgAdmissionRefused   = "очередь слишком длинная, запишитесь на удобное время"
	msgQueueCorrupted     = "очередь временно недоступна"
)

type Handler struct {
	useCase JoinQueueUseCase
	logger  Logger
}

func NewHandler(useCase JoinQueueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/queue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	var req JoinQueueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/{id}/queue - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(shopID))
	if err != nil {
		var refused *joinQueue.RefusedError
		switch {
		case errors.As(err, &refused):
			h.logger.Info("POST /shops/{id}/queue - Admission refused: shop_id=%s, total_wait=%d",
				shopID, refused.Estimate.TotalMinutes)
			handlers.RespondJSON(w, http.StatusConflict, RefusedResponse{
				Error:    msgAdmissionRefused,
				Reason:   refused.Reason,
				Estimate: queuemodels.FromEstimate(refused.Estimate),
			})

		case errors.Is(err, joinQueue.ErrInvalidInput):
			h.logger.Warn("POST /shops/{id}/queue - Invalid input: shop_id=%s, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, joinQueue.ErrShopNotFound):
			h.logger.Warn("POST /shops/{id}/queue - Shop not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, joinQueue.ErrQueueCorrupted):
			h.logger.Error("POST /shops/{id}/queue - Queue corrupted: shop_id=%s, error=%v", shopID, err)
			handlers.RespondUnprocessable(w, msgQueueCorrupted)

		default:
			h.logger.Error("POST /shops/{id}/queue - Failed to join queue: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{id}/queue - Customer joined: shop_id=%s, entry_id=%s, position=%d, wait=%d",
		shopID, result.Entry.ID, result.Entry.Position, result.Estimate.TotalMinutes)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
