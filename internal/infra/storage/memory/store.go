// Package memory is the in-process storage driver. It implements the same
// repository contracts as the postgres packages and returns their sentinel
// errors, so use cases behave identically on either driver.
package memory

import (
	"sync"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// Store holds every table in memory. Reads return copies.
type Store struct {
	mu        sync.RWMutex
	shops     map[string]domain.Shop
	services  map[string][]domain.Service  // by shop
	schedules map[string][]domain.Schedule // by shop
	queue     map[string]domain.QueueEntry // by entry id
	bookings  map[string]domain.Booking    // by booking id
}

func NewStore() *Store {
	return &Store{
		shops:     map[string]domain.Shop{},
		services:  map[string][]domain.Service{},
		schedules: map[string][]domain.Schedule{},
		queue:     map[string]domain.QueueEntry{},
		bookings:  map[string]domain.Booking{},
	}
}

// SeedShop registers a shop with its catalog and weekly schedule, replacing previous data
func (s *Store) SeedShop(shop domain.Shop, services []domain.Service, schedules []domain.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shops[shop.ID] = shop

	svc := make([]domain.Service, len(services))
	for i, item := range services {
		item.ShopID = shop.ID
		svc[i] = item
	}
	s.services[shop.ID] = svc

	sch := make([]domain.Schedule, len(schedules))
	for i, item := range schedules {
		item.ShopID = shop.ID
		sch[i] = item
	}
	s.schedules[shop.ID] = sch
}

func (s *Store) Queue() *QueueRepository {
	return &QueueRepository{store: s}
}

func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

func (s *Store) Catalog() *CatalogRepository {
	return &CatalogRepository{store: s}
}
