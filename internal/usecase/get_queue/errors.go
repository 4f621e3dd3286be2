package get_queue

import "errors"

var (
	// ErrShopNotFound возвращается, когда парикмахерская не найдена
	ErrShopNotFound = errors.New("get_queue: shop not found")

	// ErrQueueCorrupted возвращается, когда сохраненная очередь нарушает нумерацию
	ErrQueueCorrupted = errors.New("get_queue: stored queue is inconsistent")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_queue: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_queue: internal error")
)
