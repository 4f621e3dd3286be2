package shop

import (
	"context"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// CatalogRepository интерфейс справочника парикмахерской
type CatalogRepository interface {
	GetShop(ctx context.Context, shopID string) (*domain.Shop, error)
	ListServices(ctx context.Context, shopID string) ([]domain.Service, error)
	ListSchedules(ctx context.Context, shopID string) ([]domain.Schedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
