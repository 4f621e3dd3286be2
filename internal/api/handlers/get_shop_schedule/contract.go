package get_shop_schedule

import (
	"context"

	"github.com/m04kA/SMC-BarberQueue/internal/service/shop/models"
)

type ShopService interface {
	GetWeekSchedule(ctx context.Context, shopID string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
