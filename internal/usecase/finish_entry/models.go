package finish_entry

import "github.com/m04kA/SMC-BarberQueue/internal/domain"

// Request перевод записи очереди в конечный статус
type Request struct {
	ShopID  string
	EntryID string
	Status  string // completed, no_show или cancelled
}

// Response запись после перехода
type Response struct {
	Entry domain.QueueEntry
	// Shifted сколько ожидающих сдвинулись на одну позицию вперед
	Shifted int
}
