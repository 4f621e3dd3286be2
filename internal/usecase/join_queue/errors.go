package join_queue

import (
	"errors"

	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
)

var (
	// ErrShopNotFound возвращается, когда парикмахерская не найдена
	ErrShopNotFound = errors.New("join_queue: shop not found")

	// ErrAdmissionRefused возвращается, когда ожидание слишком велико и клиенту предлагается запись
	ErrAdmissionRefused = errors.New("join_queue: admission refused, please book an appointment")

	// ErrQueueCorrupted возвращается, когда сохраненная очередь нарушает нумерацию
	ErrQueueCorrupted = errors.New("join_queue: stored queue is inconsistent")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("join_queue: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("join_queue: internal error")
)

// RefusedError несет оценку и причину отказа, errors.Is(err, ErrAdmissionRefused) == true
type RefusedError struct {
	Estimate estimator.WaitEstimate
	Reason   string
}

func (e *RefusedError) Error() string {
	return ErrAdmissionRefused.Error() + ": " + e.Reason
}

func (e *RefusedError) Unwrap() error {
	return ErrAdmissionRefused
}
