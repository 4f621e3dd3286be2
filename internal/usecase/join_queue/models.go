package join_queue

import (
	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
)

// Request модель запроса на постановку в живую очередь
type Request struct {
	ShopID           string
	ServiceID        *string // nil - "любая стрижка", длительность по умолчанию
	CustomerName     string
	CustomerPhone    *string
	DepositReference *string // непрозрачная ссылка на удержанный депозит
}

// Response созданная запись и оценка, с которой клиент встал в очередь
type Response struct {
	Entry    domain.QueueEntry
	Estimate estimator.WaitEstimate
	// Advice предупреждение для клиента (например, о записях, которые прервут очередь)
	Advice *string
}
