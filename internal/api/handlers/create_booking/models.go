package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberQueue/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

// errInvalidTime отличает ошибку времени от ошибки даты при парсинге
var errInvalidTime = errors.New("invalid start time")

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID        string  `json:"serviceId"`
	BarberID         *string `json:"barberId,omitempty"` // null - любой мастер
	BookingDate      string  `json:"bookingDate"`        // "2025-10-15"
	StartTime        string  `json:"startTime"`          // "10:00"
	CustomerName     string  `json:"customerName"`
	CustomerPhone    *string `json:"customerPhone,omitempty"`
	DepositReference *string `json:"depositReference,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               string  `json:"id"`
	ShopID           string  `json:"shopId"`
	BarberID         *string `json:"barberId,omitempty"`
	ServiceID        string  `json:"serviceId"`
	BookingDate      string  `json:"bookingDate"`
	StartTime        string  `json:"startTime"`
	DurationMinutes  int     `json:"durationMinutes"`
	Status           string  `json:"status"`
	CustomerName     string  `json:"customerName"`
	CustomerPhone    *string `json:"customerPhone,omitempty"`
	DepositReference *string `json:"depositReference,omitempty"`
	ServiceName      string  `json:"serviceName"`
	ServicePrice     float64 `json:"servicePrice"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(shopID string) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		ShopID:           shopID,
		ServiceID:        r.ServiceID,
		BarberID:         r.BarberID,
		Date:             bookingDate,
		StartTime:        startTime,
		CustomerName:     r.CustomerName,
		CustomerPhone:    r.CustomerPhone,
		DepositReference: r.DepositReference,
		Notes:            r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		ShopID:           resp.ShopID,
		BarberID:         resp.BarberID,
		ServiceID:        resp.ServiceID,
		BookingDate:      resp.BookingDate.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Status:           resp.Status,
		CustomerName:     resp.CustomerName,
		CustomerPhone:    resp.CustomerPhone,
		DepositReference: resp.DepositReference,
		ServiceName:      resp.ServiceName,
		ServicePrice:     resp.ServicePrice,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
