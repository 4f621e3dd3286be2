package get_shop_services

import (
	"context"

	"github.com/m04kA/SMC-BarberQueue/internal/service/shop/models"
)

type ShopService interface {
	GetCatalog(ctx context.Context, shopID string) (*models.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
