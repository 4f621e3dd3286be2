package get_available_slots

import (
	"fmt"
	"strings"
)

// maxIntervalMinutes шаг сетки не больше суток
const maxIntervalMinutes = 24 * 60

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ShopID) == "" {
		return fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.IntervalMinutes < 0 || req.IntervalMinutes > maxIntervalMinutes {
		return fmt.Errorf("%w: interval must be within 1..%d minutes", ErrInvalidInput, maxIntervalMinutes)
	}

	if req.BarberID != nil && strings.TrimSpace(*req.BarberID) == "" {
		return fmt.Errorf("%w: barberId must not be empty when set", ErrInvalidInput)
	}

	return nil
}
