package domain

import "time"

// QueueStatus статус записи в живой очереди
type QueueStatus string

const (
	QueueWaiting   QueueStatus = "waiting"
	QueueInService QueueStatus = "in_service"
	QueueCompleted QueueStatus = "completed"
	QueueNoShow    QueueStatus = "no_show"
	QueueCancelled QueueStatus = "cancelled"
)

// ParseQueueStatus validates a status coming from the outside
func ParseQueueStatus(s string) (QueueStatus, bool) {
	switch st := QueueStatus(s); st {
	case QueueWaiting, QueueInService, QueueCompleted, QueueNoShow, QueueCancelled:
		return st, true
	}
	return "", false
}

// IsActive waiting or in_service
func (s QueueStatus) IsActive() bool {
	return s == QueueWaiting || s == QueueInService
}

func (s QueueStatus) IsTerminal() bool {
	return s == QueueCompleted || s == QueueNoShow || s == QueueCancelled
}

// QueueEntry walk-in клиент в очереди парикмахерской.
// Position - место среди ожидающих (1 = следующий), 0 вне множества ожидающих.
type QueueEntry struct {
	ID                   string
	ShopID               string
	ServiceID            *string // nil = без предпочтений
	CustomerName         string
	CustomerPhone        *string
	Status               QueueStatus
	Position             int
	EstimatedWaitMinutes int
	DepositReference     *string
	CreatedAt            time.Time
	CalledAt             *time.Time
	CompletedAt          *time.Time
	UpdatedAt            time.Time
}

// Clone returns a deep copy so that engine results never alias caller snapshots
func (e QueueEntry) Clone() QueueEntry {
	c := e
	c.ServiceID = clonePtr(e.ServiceID)
	c.CustomerPhone = clonePtr(e.CustomerPhone)
	c.DepositReference = clonePtr(e.DepositReference)
	c.CalledAt = clonePtr(e.CalledAt)
	c.CompletedAt = clonePtr(e.CompletedAt)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
