package finish_entry

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// validateRequest проверяет запрос и возвращает целевой статус
func validateRequest(req *Request) (domain.QueueStatus, error) {
	if strings.TrimSpace(req.ShopID) == "" {
		return "", fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.EntryID) == "" {
		return "", fmt.Errorf("%w: entryID is required", ErrInvalidInput)
	}

	status, ok := domain.ParseQueueStatus(req.Status)
	if !ok || !status.IsTerminal() {
		return "", fmt.Errorf("%w: status must be one of completed, no_show, cancelled, got %q", ErrInvalidInput, req.Status)
	}
	return status, nil
}
