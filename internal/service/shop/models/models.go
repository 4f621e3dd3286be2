package models

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	AverageDurationMinutes int     `json:"averageDurationMinutes"`
	Price                  float64 `json:"price"`
}

// CatalogResponse каталог услуг парикмахерской
type CatalogResponse struct {
	ShopID   string            `json:"shopId"`
	Name     string            `json:"name"`
	Services []ServiceResponse `json:"services"`
}

// DayResponse рабочие часы одного дня недели
type DayResponse struct {
	Weekday   int     `json:"weekday"` // 0 - воскресенье
	Name      string  `json:"name"`
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`  // "09:00"
	CloseTime *string `json:"closeTime,omitempty"` // "20:00"
}

// ScheduleResponse недельное расписание
type ScheduleResponse struct {
	ShopID string        `json:"shopId"`
	Days   []DayResponse `json:"days"`
}

// FromDomainCatalog конвертирует каталог, услуги по имени
func FromDomainCatalog(shop *domain.Shop, services []domain.Service) *CatalogResponse {
	resp := &CatalogResponse{
		ShopID:   shop.ID,
		Name:     shop.Name,
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:                     s.ID,
			Name:                   s.Name,
			AverageDurationMinutes: s.AverageDurationMinutes,
			Price:                  s.Price,
		})
	}
	sort.Slice(resp.Services, func(i, j int) bool {
		return resp.Services[i].Name < resp.Services[j].Name
	})
	return resp
}

// FromDomainWeek конвертирует расписание во все 7 дней, отсутствующий день - выходной
func FromDomainWeek(shopID string, week domain.WeekSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{ShopID: shopID, Days: make([]DayResponse, 0, 7)}
	for d := time.Sunday; d <= time.Saturday; d++ {
		day := DayResponse{Weekday: int(d), Name: d.String()}
		if s, ok := week[d]; ok && s.IsOpen() {
			open, closing := s.OpenTime.String(), s.CloseTime.String()
			day.IsOpen = true
			day.OpenTime = &open
			day.CloseTime = &closing
		}
		resp.Days = append(resp.Days, day)
	}
	return resp
}
