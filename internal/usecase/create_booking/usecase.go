package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/policy"
	catalogRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberQueue/internal/integrations/notifier"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	locker       Locker
	cfg          Config
	notifier     Notifier
	metrics      Metrics
	newID        IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	locker Locker,
	cfg Config,
	notifier Notifier,
	metrics Metrics,
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
		locker:       locker,
		cfg:          cfg,
		notifier:     notifier,
		metrics:      metrics,
		newID:        uuid.NewString,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка слота и вставка идут под блокировкой парикмахерской, поэтому два клиента
// не получат одно и то же время у одного мастера.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	barber := domain.BarberFromPtr(req.BarberID)
	uc.logger.Info("CreateBooking: shop=%s, service=%s, barber=%s, date=%s, time=%s",
		req.ShopID, req.ServiceID, barber, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	if err := validateAdvance(req.Date, now, uc.cfg.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Все проверки и вставка под блокировкой парикмахерской
	err := uc.locker.DoLocked(ctx, domain.ShopLockKey(req.ShopID), func(lockCtx context.Context) error {
		// 3.1. Парикмахерская и услуга
		if _, err := uc.catalogRepo.GetShop(lockCtx, req.ShopID); err != nil {
			if errors.Is(err, catalogRepo.ErrShopNotFound) {
				uc.logger.Warn("CreateBooking: shop id=%s not found", req.ShopID)
				return ErrShopNotFound
			}
			uc.logger.Error("CreateBooking: failed to get shop id=%s: %v", req.ShopID, err)
			return fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
		}

		service, err := uc.catalogRepo.GetService(lockCtx, req.ShopID, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// 3.2. Рабочие часы на указанную дату
		schedules, err := uc.catalogRepo.ListSchedules(lockCtx, req.ShopID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		schedule := domain.NewWeekSchedule(schedules).For(req.Date)

		// 3.3. Активные бронирования на эту дату (FOR UPDATE внутри транзакции)
		bookings, err := uc.bookingRepo.GetByShopWithFilter(lockCtx, domain.ShopBookingsFilter{
			ShopID: req.ShopID,
			Date:   &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.4. Проверяем слот
		err = policy.CheckBookable(policy.SlotQuery{
			Schedule:        schedule,
			Date:            req.Date,
			Now:             now,
			Barber:          barber,
			Bookings:        bookings,
			IntervalMinutes: uc.cfg.IntervalMinutes,
			MinLeadMinutes:  uc.cfg.MinLeadMinutes,
		}, req.StartTime)
		if err != nil {
			uc.logger.Warn("CreateBooking: slot %s %s rejected: %v", req.Date.Format(domain.DateFormat), req.StartTime, err)
			return mapPolicyError(err)
		}

		duration := service.AverageDurationMinutes
		if duration <= 0 {
			duration = domain.DefaultServiceMinutes
		}

		// 3.5. Создаем бронирование с денормализацией данных услуги
		booking := &domain.Booking{
			ID:               uc.newID(),
			ShopID:           req.ShopID,
			Barber:           barber,
			ServiceID:        service.ID,
			BookingDate:      req.Date,
			StartTime:        req.StartTime,
			DurationMinutes:  duration,
			Status:           domain.InitialBookingStatus(req.DepositReference),
			CustomerName:     req.CustomerName,
			CustomerPhone:    req.CustomerPhone,
			DepositReference: req.DepositReference,
			ServiceName:      service.Name,
			ServicePrice:     service.Price,
			Notes:            req.Notes,
		}

		created, err := uc.bookingRepo.Create(lockCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordBooking(string(result.Status))
	uc.logger.Info("CreateBooking: successfully created booking id=%s (%s)", result.ID, result.Status)

	if err := uc.notifier.Notify(ctx, notifier.BookingCreated(*result, now)); err != nil {
		uc.logger.Warn("CreateBooking: notification for booking id=%s not enqueued: %v", result.ID, err)
	}

	// Конвертируем в response
	return &Response{
		ID:               result.ID,
		ShopID:           result.ShopID,
		BarberID:         result.Barber.Ptr(),
		ServiceID:        result.ServiceID,
		BookingDate:      result.BookingDate,
		StartTime:        result.StartTime,
		DurationMinutes:  result.DurationMinutes,
		Status:           string(result.Status),
		CustomerName:     result.CustomerName,
		CustomerPhone:    result.CustomerPhone,
		DepositReference: result.DepositReference,
		ServiceName:      result.ServiceName,
		ServicePrice:     result.ServicePrice,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// mapPolicyError переводит отказ политики в ошибку use case
func mapPolicyError(err error) error {
	switch {
	case errors.Is(err, policy.ErrShopClosed):
		return ErrShopClosed
	case errors.Is(err, policy.ErrDateInPast):
		return ErrInvalidDate
	case errors.Is(err, policy.ErrNotASlot):
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	case errors.Is(err, policy.ErrLeadTimeTooShort):
		return fmt.Errorf("%w: %v", ErrTooLateToBook, err)
	case errors.Is(err, policy.ErrSlotTaken):
		return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
