package join_queue

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ShopID) == "" {
		return fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.ServiceID != nil && strings.TrimSpace(*req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId must not be empty when set", ErrInvalidInput)
	}

	if req.CustomerPhone != nil && len(*req.CustomerPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customerPhone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.DepositReference != nil && len(*req.DepositReference) > domain.MaxDepositReferenceLength {
		return fmt.Errorf("%w: depositReference exceeds %d characters", ErrInvalidInput, domain.MaxDepositReferenceLength)
	}

	return nil
}
