package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ShopID) == "" {
		return fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.BarberID != nil && strings.TrimSpace(*req.BarberID) == "" {
		return fmt.Errorf("%w: barberId must not be empty when set", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.CustomerPhone != nil && len(*req.CustomerPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customerPhone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.DepositReference != nil && len(*req.DepositReference) > domain.MaxDepositReferenceLength {
		return fmt.Errorf("%w: depositReference exceeds %d characters", ErrInvalidInput, domain.MaxDepositReferenceLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateAdvance проверяет, что дата не дальше advanceBookingDays от сегодня
func validateAdvance(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := domain.DayStart(now).AddDate(0, 0, advanceBookingDays)
	y, m, d := bookingDate.Date()
	bookingDateOnly := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
