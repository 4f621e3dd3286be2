package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/policy"
	catalogRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.IntervalMinutes <= 0 {
		cfg.IntervalMinutes = domain.DefaultSlotIntervalMinutes
	}
	if cfg.MinLeadMinutes < 0 {
		cfg.MinLeadMinutes = domain.DefaultMinLeadMinutes
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Отсутствие свободных слотов - пустой список, а не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	barber := domain.BarberFromPtr(req.BarberID)
	uc.logger.Info("GetAvailableSlots: shop=%s, date=%s, barber=%s",
		req.ShopID, req.Date.Format(domain.DateFormat), barber)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем парикмахерскую
	if _, err := uc.catalogRepo.GetShop(ctx, req.ShopID); err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			uc.logger.Warn("GetAvailableSlots: shop id=%s not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get shop id=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	interval := req.IntervalMinutes
	if interval == 0 {
		interval = uc.cfg.IntervalMinutes
	}

	// 4. Длительность слота: из услуги, если она указана
	duration := interval
	if req.ServiceID != nil {
		service, err := uc.catalogRepo.GetService(ctx, req.ShopID, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%s not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if service.AverageDurationMinutes > 0 {
			duration = service.AverageDurationMinutes
		}
	}

	// 5. Рабочие часы на указанную дату
	schedules, err := uc.catalogRepo.ListSchedules(ctx, req.ShopID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	schedule := domain.NewWeekSchedule(schedules).For(req.Date)

	resp := &Response{
		Date:   req.Date,
		ShopID: req.ShopID,
		Barber: barber,
		Slots:  []domain.AvailableSlot{},
	}
	if !schedule.IsOpen() {
		uc.logger.Info("GetAvailableSlots: shop is closed on %s", req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// 6. Активные бронирования на эту дату
	bookings, err := uc.bookingRepo.GetByShopWithFilter(ctx, domain.ShopBookingsFilter{
		ShopID: req.ShopID,
		Date:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Генерация, фильтр по времени до начала, удаление занятых
	starts, err := policy.AvailableSlots(policy.SlotQuery{
		Schedule:        schedule,
		Date:            req.Date,
		Now:             now,
		Barber:          barber,
		Bookings:        bookings,
		IntervalMinutes: interval,
		MinLeadMinutes:  uc.cfg.MinLeadMinutes,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	for _, start := range starts {
		resp.Slots = append(resp.Slots, domain.AvailableSlot{StartTime: start, DurationMinutes: duration})
	}

	uc.logger.Info("GetAvailableSlots: %d slots for shop=%s, date=%s, barber=%s",
		len(resp.Slots), req.ShopID, req.Date.Format(domain.DateFormat), barber)

	return resp, nil
}
