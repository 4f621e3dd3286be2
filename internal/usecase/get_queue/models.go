package get_queue

import (
	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
)

// Request просмотр очереди; Refresh сохраняет пересчитанные оценки
type Request struct {
	ShopID  string
	Refresh bool
}

// WaitingEntry ожидающий клиент и его актуальная оценка
type WaitingEntry struct {
	Entry    domain.QueueEntry
	Estimate estimator.WaitEstimate
}

// Response состояние очереди парикмахерской
type Response struct {
	ShopID    string
	InService *domain.QueueEntry
	Waiting   []WaitingEntry
	// Refreshed сколько сохраненных оценок изменилось (только при Refresh)
	Refreshed int
}
