package get_shop_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(shopID, statusStr, dateStr, includeInactiveStr string) (*models.GetShopBookingsRequest, error) {
	req := &models.GetShopBookingsRequest{
		ShopID:          shopID,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим date если указана
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
