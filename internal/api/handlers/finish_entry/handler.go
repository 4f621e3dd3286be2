package finish_entry

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers"
	finishEntry "github.com/m04kA/SMC-BarberQueue/internal/usecase/finish_entry"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "статус должен быть completed, no_show или cancelled"
	msgEntryNotFound      = "запись в очереди не найдена"
	msgInvalidTransition  = "запись уже закрыта или еще не вызвана"
	msgQueueCorrupted     = "очередь временно недоступна"
)

type Handler struct {
	useCase FinishEntryUseCase
	logger  Logger
}

func NewHandler(useCase FinishEntryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/shops/{shopId}/queue/{entryId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID, entryID := vars["shopId"], vars["entryId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /shops/{id}/queue/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &finishEntry.Request{
		ShopID:  shopID,
		EntryID: entryID,
		Status:  req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, finishEntry.ErrInvalidInput):
			h.logger.Warn("PATCH /shops/{id}/queue/{id}/status - Invalid status: entry_id=%s, status=%q", entryID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, finishEntry.ErrEntryNotFound):
			h.logger.Warn("PATCH /shops/{id}/queue/{id}/status - Entry not found: shop_id=%s, entry_id=%s", shopID, entryID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, finishEntry.ErrInvalidTransition):
			h.logger.Warn("PATCH /shops/{id}/queue/{id}/status - Invalid transition: entry_id=%s, status=%s", entryID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, finishEntry.ErrQueueCorrupted):
			h.logger.Error("PATCH /shops/{id}/queue/{id}/status - Queue corrupted: shop_id=%s, error=%v", shopID, err)
			handlers.RespondUnprocessable(w, msgQueueCorrupted)

		default:
			h.logger.Error("PATCH /shops/{id}/queue/{id}/status - Failed to update entry: entry_id=%s, error=%v", entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /shops/{id}/queue/{id}/status - Entry closed: entry_id=%s, status=%s, shifted=%d",
		entryID, result.Entry.Status, result.Shifted)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
