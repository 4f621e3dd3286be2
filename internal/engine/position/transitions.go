package position

import "github.com/m04kA/SMC-BarberQueue/internal/domain"

// transitionMap target status -> statuses it may be reached from
var transitionMap = map[domain.QueueStatus][]domain.QueueStatus{
	domain.QueueInService: {domain.QueueWaiting},
	domain.QueueCompleted: {domain.QueueInService},
	domain.QueueNoShow:    {domain.QueueWaiting, domain.QueueInService},
	domain.QueueCancelled: {domain.QueueWaiting},
}

// ValidTransition reports whether an entry in status from may move to status to
func ValidTransition(from, to domain.QueueStatus) bool {
	for _, status := range transitionMap[to] {
		if status == from {
			return true
		}
	}
	return false
}
