package finish_entry

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// QueueRepository интерфейс репозитория живой очереди
type QueueRepository interface {
	ListActive(ctx context.Context, shopID string) ([]domain.QueueEntry, error)
	GetByID(ctx context.Context, shopID, id string) (*domain.QueueEntry, error)
	Update(ctx context.Context, entry *domain.QueueEntry) error
}

// Locker выполняет fn под блокировкой парикмахерской
type Locker interface {
	DoLocked(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Metrics счетчик выходов из очереди
type Metrics interface {
	RecordExit(status string)
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
