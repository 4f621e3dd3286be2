package call_next

import "errors"

var (
	// ErrShopNotFound возвращается, когда парикмахерская не найдена
	ErrShopNotFound = errors.New("call_next: shop not found")

	// ErrEmptyQueue возвращается, когда в очереди никто не ждет
	ErrEmptyQueue = errors.New("call_next: nobody is waiting")

	// ErrQueueCorrupted возвращается, когда сохраненная очередь нарушает нумерацию
	ErrQueueCorrupted = errors.New("call_next: stored queue is inconsistent")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("call_next: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("call_next: internal error")
)
