package call_next

import "github.com/m04kA/SMC-BarberQueue/internal/domain"

// Request вызов следующего клиента к мастеру
type Request struct {
	ShopID string
}

// Response клиент в кресле
type Response struct {
	Entry domain.QueueEntry
	// Called false, если мастер еще занят и вызова не было
	Called bool
	// Waiting сколько клиентов осталось ждать
	Waiting int
}
