package join_queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/policy"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/position"
	catalogRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberQueue/internal/integrations/notifier"
	"github.com/m04kA/SMC-BarberQueue/pkg/metrics"
)

// UseCase use case для постановки клиента в живую очередь
type UseCase struct {
	queueRepo    QueueRepository
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	locker       Locker
	estimator    *estimator.Estimator
	adviseLimit  int
	notifier     Notifier
	metrics      Metrics
	newID        IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	queueRepo QueueRepository,
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	locker Locker,
	est *estimator.Estimator,
	adviseLimit int,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		queueRepo:    queueRepo,
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		locker:       locker,
		estimator:    est,
		adviseLimit:  adviseLimit,
		notifier:     notifier,
		metrics:      metrics,
		newID:        uuid.NewString,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case постановки в очередь.
// Чтение очереди, оценка и вставка идут под блокировкой парикмахерской.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("JoinQueue: shop=%s, service=%v, customer=%q", req.ShopID, serviceLabel(req.ServiceID), req.CustomerName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("JoinQueue: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *Response

	// 3. Все чтения и запись под блокировкой парикмахерской
	err := uc.locker.DoLocked(ctx, domain.ShopLockKey(req.ShopID), func(lockCtx context.Context) error {
		// 3.1. Проверяем парикмахерскую и загружаем каталог услуг
		if _, err := uc.catalogRepo.GetShop(lockCtx, req.ShopID); err != nil {
			if errors.Is(err, catalogRepo.ErrShopNotFound) {
				uc.logger.Warn("JoinQueue: shop id=%s not found", req.ShopID)
				return ErrShopNotFound
			}
			uc.logger.Error("JoinQueue: failed to get shop id=%s: %v", req.ShopID, err)
			return fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
		}

		services, err := uc.catalogRepo.ListServices(lockCtx, req.ShopID)
		if err != nil {
			uc.logger.Error("JoinQueue: failed to list services: %v", err)
			return fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
		}
		catalog := domain.NewCatalog(services)

		// 3.2. Снимок активной очереди (FOR UPDATE внутри транзакции)
		snapshot, err := uc.queueRepo.ListActive(lockCtx, req.ShopID)
		if err != nil {
			uc.logger.Error("JoinQueue: failed to list queue: %v", err)
			return fmt.Errorf("%w: failed to list queue: %v", ErrInternal, err)
		}

		// 3.3. Сегодняшние бронирования прерывают очередь
		today := domain.DayStart(now)
		bookings, err := uc.bookingRepo.GetByShopWithFilter(lockCtx, domain.ShopBookingsFilter{
			ShopID: req.ShopID,
			Date:   &today,
		})
		if err != nil {
			uc.logger.Error("JoinQueue: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.4. Оценка ожидания
		requested, known := uc.estimator.ServiceMinutes(catalog, req.ServiceID)
		if !known {
			uc.logger.Warn("JoinQueue: unknown service id=%s in shop=%s, using %d minutes",
				*req.ServiceID, req.ShopID, requested)
		}

		est := uc.estimator.EstimateWait(req.ShopID, snapshot, bookings, catalog, requested, now)
		if len(est.UnknownServiceIDs) > 0 {
			uc.logger.Warn("JoinQueue: queue of shop=%s references unknown services %v", req.ShopID, est.UnknownServiceIDs)
		}

		// 3.5. Совет: встать в очередь или записаться
		advice := policy.AdviseWithLimit(est, uc.adviseLimit)
		if !advice.CanJoin {
			uc.logger.Warn("JoinQueue: refused for shop=%s, total wait %d minutes", req.ShopID, est.TotalMinutes)
			return &RefusedError{Estimate: est, Reason: *advice.Reason}
		}

		// 3.6. Новая запись в конце очереди
		plan, err := position.AdmitEntry(req.ShopID, snapshot, position.NewEntry{
			ID:               uc.newID(),
			ServiceID:        req.ServiceID,
			CustomerName:     req.CustomerName,
			CustomerPhone:    req.CustomerPhone,
			DepositReference: req.DepositReference,
		}, est.TotalMinutes, now)
		if err != nil {
			if errors.Is(err, position.ErrInvariantViolation) {
				uc.logger.Error("JoinQueue: queue of shop=%s is inconsistent: %v", req.ShopID, err)
				return fmt.Errorf("%w: %v", ErrQueueCorrupted, err)
			}
			return fmt.Errorf("%w: failed to admit entry: %v", ErrInternal, err)
		}

		// 3.7. Сохраняем запись
		entry := plan.Entry
		if err := uc.queueRepo.Create(lockCtx, &entry); err != nil {
			uc.logger.Error("JoinQueue: failed to create entry: %v", err)
			return fmt.Errorf("%w: failed to create entry: %v", ErrInternal, err)
		}

		result = &Response{Entry: entry, Estimate: est, Advice: advice.Reason}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrAdmissionRefused) {
			uc.metrics.RecordAdmission(metrics.OutcomeRefused)
		}
		return nil, err
	}

	uc.metrics.RecordAdmission(metrics.OutcomeAdmitted)
	uc.metrics.ObserveEstimate(result.Estimate.TotalMinutes)

	uc.logger.Info("JoinQueue: entry id=%s joined shop=%s at position %d, wait %d minutes",
		result.Entry.ID, result.Entry.ShopID, result.Entry.Position, result.Entry.EstimatedWaitMinutes)

	// 4. Хук уведомления, ошибки только логируются
	if err := uc.notifier.Notify(ctx, notifier.QueueJoined(result.Entry, now)); err != nil {
		uc.logger.Warn("JoinQueue: notification for entry id=%s not enqueued: %v", result.Entry.ID, err)
	}

	return result, nil
}

func serviceLabel(id *string) string {
	if id == nil {
		return "any"
	}
	return *id
}
