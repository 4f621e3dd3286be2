package estimator

import "errors"

var (
	ErrEntryNotFound   = errors.New("estimator: queue entry not found")
	ErrEntryNotWaiting = errors.New("estimator: queue entry is not waiting")
)
