package get_queue

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// QueueRepository интерфейс репозитория живой очереди
type QueueRepository interface {
	ListActive(ctx context.Context, shopID string) ([]domain.QueueEntry, error)
	Update(ctx context.Context, entry *domain.QueueEntry) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByShopWithFilter(ctx context.Context, filter domain.ShopBookingsFilter) ([]domain.Booking, error)
}

// CatalogRepository интерфейс справочника парикмахерской
type CatalogRepository interface {
	GetShop(ctx context.Context, shopID string) (*domain.Shop, error)
	ListServices(ctx context.Context, shopID string) ([]domain.Service, error)
}

// Locker выполняет fn под блокировкой парикмахерской
type Locker interface {
	DoLocked(ctx context.Context, key string, fn func(ctx context.Context) error) error
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
