package finish_entry

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись очереди не найдена
	ErrEntryNotFound = errors.New("finish_entry: queue entry not found")

	// ErrInvalidTransition возвращается, когда запись нельзя перевести в запрошенный статус
	ErrInvalidTransition = errors.New("finish_entry: invalid status transition")

	// ErrQueueCorrupted возвращается, когда сохраненная очередь нарушает нумерацию
	ErrQueueCorrupted = errors.New("finish_entry: stored queue is inconsistent")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("finish_entry: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("finish_entry: internal error")
)
