package quote_wait

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers"
	quoteWait "github.com/m04kA/SMC-BarberQueue/internal/usecase/quote_wait"
)

const msgShopNotFound = "парикмахерская не найдена"

type Handler struct {
	useCase QuoteWaitUseCase
	logger  Logger
}

func NewHandler(useCase QuoteWaitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/queue/estimate
// Query params: serviceId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	req := &quoteWait.Request{ShopID: shopID}
	if s := r.URL.Query().Get("serviceId"); s != "" {
		req.ServiceID = &s
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, quoteWait.ErrShopNotFound), errors.Is(err, quoteWait.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/queue/estimate - Shop not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		default:
			h.logger.Error("GET /shops/{id}/queue/estimate - Failed to estimate: shop_id=%s, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/queue/estimate - Estimate: shop_id=%s, total=%d, can_join=%t",
		shopID, result.Estimate.TotalMinutes, result.Advice.CanJoin)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
