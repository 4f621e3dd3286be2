package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// Config сетка слотов по умолчанию
type Config struct {
	IntervalMinutes int // шаг сетки слотов
	MinLeadMinutes  int // минимальное время до начала записи
}

// Request модель запроса на получение доступных слотов
type Request struct {
	ShopID          string
	Date            time.Time // Дата для получения слотов (без времени)
	BarberID        *string   // nil - любой мастер
	ServiceID       *string   // если указана, длительность слота берется из услуги
	IntervalMinutes int       // 0 - шаг из конфигурации
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date   time.Time
	ShopID string
	Barber domain.BarberPreference
	Slots  []domain.AvailableSlot
}
