package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberQueue/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date     string          `json:"date"`
	ShopID   string          `json:"shopId"`
	BarberID *string         `json:"barberId,omitempty"` // null - любой мастер
	Slots    []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &AvailableSlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		ShopID:   resp.ShopID,
		BarberID: resp.Barber.Ptr(),
		Slots:    slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(shopID, dateStr, barberID, serviceID, intervalStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		ShopID: shopID,
		Date:   date,
	}
	if barberID != "" {
		req.BarberID = &barberID
	}
	if serviceID != "" {
		req.ServiceID = &serviceID
	}
	if intervalStr != "" {
		interval, err := strconv.Atoi(intervalStr)
		if err != nil {
			return nil, err
		}
		req.IntervalMinutes = interval
	}

	return req, nil
}
