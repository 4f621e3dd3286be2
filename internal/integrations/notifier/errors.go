package notifier

import "errors"

var (
	// ErrMarshal возвращается, когда сообщение не удалось сериализовать
	ErrMarshal = errors.New("notifier: failed to marshal message")

	// ErrPush возвращается, когда Redis не принял сообщение
	ErrPush = errors.New("notifier: failed to push message")
)
