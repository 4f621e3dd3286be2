package memory

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/catalog"
)

// CatalogRepository in-memory shops, services and schedules
type CatalogRepository struct {
	store *Store
}

func (r *CatalogRepository) GetShop(_ context.Context, shopID string) (*domain.Shop, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	shop, ok := r.store.shops[shopID]
	if !ok {
		return nil, catalogRepo.ErrShopNotFound
	}
	return &shop, nil
}

func (r *CatalogRepository) ListServices(_ context.Context, shopID string) ([]domain.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := append([]domain.Service{}, r.store.services[shopID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CatalogRepository) GetService(_ context.Context, shopID, serviceID string) (*domain.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, s := range r.store.services[shopID] {
		if s.ID == serviceID {
			found := s
			return &found, nil
		}
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (r *CatalogRepository) ListSchedules(_ context.Context, shopID string) ([]domain.Schedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := append([]domain.Schedule{}, r.store.schedules[shopID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Weekday < out[j].Weekday })
	return out, nil
}
