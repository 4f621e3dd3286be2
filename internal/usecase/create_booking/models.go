package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberQueue/pkg/types"
)

// Config ограничения записи
type Config struct {
	IntervalMinutes    int // шаг сетки слотов
	MinLeadMinutes     int // минимальное время до начала записи
	AdvanceBookingDays int // 0 - без ограничения
}

// Request модель запроса на создание бронирования
type Request struct {
	ShopID           string
	ServiceID        string
	BarberID         *string          // nil - любой мастер
	Date             time.Time        // Дата бронирования (без времени)
	StartTime        types.TimeString // Время начала слота (например, "10:00")
	CustomerName     string
	CustomerPhone    *string
	DepositReference *string // ссылка на удержанный депозит, подтверждает запись
	Notes            *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	ShopID          string
	BarberID        *string
	ServiceID       string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	CustomerName     string
	CustomerPhone    *string
	DepositReference *string

	// Денормализованные данные
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
