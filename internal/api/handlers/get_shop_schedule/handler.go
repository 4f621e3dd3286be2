package get_shop_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberQueue/internal/api/handlers"
	"github.com/m04kA/SMC-BarberQueue/internal/service/shop"
)

const msgShopNotFound = "парикмахерская не найдена"

type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	result, err := h.service.GetWeekSchedule(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, shop.ErrShopNotFound) {
			h.logger.Warn("GET /shops/{id}/schedule - Shop not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)
			return
		}

		h.logger.Error("GET /shops/{id}/schedule - Failed to get schedule: shop_id=%s, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shops/{id}/schedule - Schedule retrieved successfully: shop_id=%s", shopID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
