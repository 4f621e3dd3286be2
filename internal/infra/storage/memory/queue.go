package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	queueRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/queue"
)

// QueueRepository in-memory queue_entries
type QueueRepository struct {
	store *Store
}

func (r *QueueRepository) ListActive(_ context.Context, shopID string) ([]domain.QueueEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := make([]domain.QueueEntry, 0)
	for _, e := range r.store.queue {
		if e.ShopID == shopID && e.Status.IsActive() {
			entries = append(entries, e.Clone())
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Position != entries[j].Position {
			return entries[i].Position < entries[j].Position
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func (r *QueueRepository) GetByID(_ context.Context, shopID, id string) (*domain.QueueEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.queue[id]
	if !ok || e.ShopID != shopID {
		return nil, queueRepo.ErrEntryNotFound
	}
	c := e.Clone()
	return &c, nil
}

func (r *QueueRepository) Create(_ context.Context, entry *domain.QueueEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.queue[entry.ID] = entry.Clone()
	return nil
}

func (r *QueueRepository) Update(_ context.Context, entry *domain.QueueEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.queue[entry.ID]
	if !ok || current.ShopID != entry.ShopID {
		return queueRepo.ErrEntryNotFound
	}

	current.Status = entry.Status
	current.Position = entry.Position
	current.EstimatedWaitMinutes = entry.EstimatedWaitMinutes
	current.CalledAt = entry.Clone().CalledAt
	current.CompletedAt = entry.Clone().CompletedAt
	current.UpdatedAt = entry.UpdatedAt
	r.store.queue[entry.ID] = current
	return nil
}
