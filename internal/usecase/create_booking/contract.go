package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/integrations/notifier"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByShopWithFilter(ctx context.Context, filter domain.ShopBookingsFilter) ([]domain.Booking, error)
}

// CatalogRepository интерфейс справочника парикмахерской
type CatalogRepository interface {
	GetShop(ctx context.Context, shopID string) (*domain.Shop, error)
	GetService(ctx context.Context, shopID, serviceID string) (*domain.Service, error)
	ListSchedules(ctx context.Context, shopID string) ([]domain.Schedule, error)
}

// Locker выполняет fn под блокировкой парикмахерской (в БД - транзакция с advisory lock)
type Locker interface {
	DoLocked(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Notifier отправляет хук о новой записи
type Notifier interface {
	Notify(ctx context.Context, msg notifier.Message) error
}

// Metrics счетчик созданных записей
type Metrics interface {
	RecordBooking(status string)
}

// IDGenerator генерирует идентификаторы бронирований
type IDGenerator func() string

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
