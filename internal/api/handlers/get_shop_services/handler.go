package get_shop_services

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

// Handle GET /api/v1/shops/{shopId}/services
// Публичный endpoint - каталог для экрана "встать в очередь или записаться"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]

	result, err := h.service.GetCatalog(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, shop.ErrShopNotFound) {
			h.logger.Warn("GET /shops/{id}/services - Shop not found: shop_id=%s", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)
			return
		}

		h.logger.Error("GET /shops/{id}/services - Failed to get catalog: shop_id=%s, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shops/{id}/services - Catalog retrieved successfully: shop_id=%s, services=%d",
		shopID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
