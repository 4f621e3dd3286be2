package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByShopWithFilter получает бронирования парикмахерской на конкретную дату
	GetByShopWithFilter(ctx context.Context, filter domain.ShopBookingsFilter) ([]domain.Booking, error)
}

// CatalogRepository интерфейс справочника парикмахерской
type CatalogRepository interface {
	GetShop(ctx context.Context, shopID string) (*domain.Shop, error)
	GetService(ctx context.Context, shopID, serviceID string) (*domain.Service, error)
	ListSchedules(ctx context.Context, shopID string) ([]domain.Schedule, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
