package call_next

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers"
	callNext "github.com/m04kA/SMC-BarberQueue/internal/usecase/call_next"
)

const (
	msgShopNotFound   = "парикмахерская не найдена"
	msgEmptyQueue     = "в очереди никого нет"
	msgQueueCorrupted = "очередь временно недоступна"
)

type Handler struct {
	useCase CallNextUseCase
	logger  Logger
}

func NewHandler(useCase CallNextUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shops/{shopId}/queue/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	result, err := h.useCase.Execute(r.Context(), &callNext.Request{ShopID: shopID})
	if err != nil {
		switch {
		case errors.Is(err, callNext.ErrShopNotFound), errors.Is(err, callNext.ErrInvalidInput):
			h.logger.Warn("POST /shops/{id}/queue/next - Shop not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, callNext.ErrEmptyQueue):
			h.logger.Info("POST /shops/{id}/queue/next - Queue is empty: shop_id=%s", shopID)
			handlers.RespondConflict(w, msgEmptyQueue)

		case errors.Is(err, callNext.ErrQueueCorrupted):
			h.logger.Error("POST /shops/{id}/queue/next - Queue corrupted: shop_id=%s, error=%v", shopID, err)
			handlers.RespondUnprocessable(w, msgQueueCorrupted)

		default:
			h.logger.Error("POST /shops/{id}/queue/next - Failed to call next: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Called {
		h.logger.Info("POST /shops/{id}/queue/next - Customer called: shop_id=%s, entry_id=%s, waiting=%d",
			shopID, result.Entry.ID, result.Waiting)
	} else {
		h.logger.Info("POST /shops/{id}/queue/next - Barber busy: shop_id=%s, in_service=%s",
			shopID, result.Entry.ID)
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
