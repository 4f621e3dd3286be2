package memory

import (
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// DemoShopID id of the shop created by SeedDemo
const DemoShopID = "demo"

// SeedDemo fills the store with one shop open 09:00-20:00 Monday to Saturday
func SeedDemo(s *Store) {
	var schedules []domain.Schedule
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d == time.Sunday {
			schedules = append(schedules, domain.Schedule{Weekday: d, IsClosed: true})
			continue
		}
		schedules = append(schedules, domain.Schedule{Weekday: d, OpenTime: "09:00", CloseTime: "20:00"})
	}

	s.SeedShop(
		domain.Shop{ID: DemoShopID, Name: "Demo Barbershop", CreatedAt: time.Now()},
		[]domain.Service{
			{ID: "haircut", Name: "Haircut", AverageDurationMinutes: 40, Price: 30},
			{ID: "beard", Name: "Beard trim", AverageDurationMinutes: 20, Price: 15},
			{ID: "combo", Name: "Haircut and beard", AverageDurationMinutes: 60, Price: 40},
			{ID: "kids", Name: "Kids haircut", AverageDurationMinutes: 30, Price: 20},
		},
		schedules,
	)
}
