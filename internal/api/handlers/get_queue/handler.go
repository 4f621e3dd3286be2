package get_queue

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers"
	getQueue "github.com/m04kA/SMC-BarberQueue/internal/usecase/get_queue"
)

const (
	msgInvalidRefresh = "параметр refresh должен быть true или false"
	msgShopNotFound   = "парикмахерская не найдена"
	msgQueueCorrupted = "очередь временно недоступна"
)

type Handler struct {
	useCase GetQueueUseCase
	logger  Logger
}

func NewHandler(useCase GetQueueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/queue
// Query params: refresh (опционально) - сохранить пересчитанные оценки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	refresh := false
	if s := r.URL.Query().Get("refresh"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			h.logger.Warn("GET /shops/{id}/queue - Invalid refresh flag: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRefresh)
			return
		}
		refresh = v
	}

	result, err := h.useCase.Execute(r.Context(), &getQueue.Request{ShopID: shopID, Refresh: refresh})
	if err != nil {
		switch {
		case errors.Is(err, getQueue.ErrShopNotFound), errors.Is(err, getQueue.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/queue - Shop not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, getQueue.ErrQueueCorrupted):
			h.logger.Error("GET /shops/{id}/queue - Queue corrupted: shop_id=%s, error=%v", shopID, err)
			handlers.RespondUnprocessable(w, msgQueueCorrupted)

		default:
			h.logger.Error("GET /shops/{id}/queue - Failed to get queue: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/queue - Queue retrieved: shop_id=%s, waiting=%d, refreshed=%d",
		shopID, len(result.Waiting), result.Refreshed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
