package call_next

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/integrations/notifier"
)

// QueueRepository интерфейс репозитория живой очереди
type QueueRepository interface {
	ListActive(ctx context.Context, shopID string) ([]domain.QueueEntry, error)
	Update(ctx context.Context, entry *domain.QueueEntry) error
}

// ShopRepository проверка существования парикмахерской
type ShopRepository interface {
	GetShop(ctx context.Context, shopID string) (*domain.Shop, error)
}

// Locker выполняет fn под блокировкой парикмахерской
type Locker interface {
	DoLocked(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Notifier отправляет хук о вызове клиента
type Notifier interface {
	Notify(ctx context.Context, msg notifier.Message) error
}

// Metrics счетчик вызовов
type Metrics interface {
	RecordAdvance(outcome string)
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
