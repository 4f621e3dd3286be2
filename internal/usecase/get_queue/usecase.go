package get_queue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/position"
	catalogRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/catalog"
)

// UseCase показывает очередь с живыми оценками ожидания.
// Сохраненная оценка каждой записи меняется только по явному запросу Refresh.
type UseCase struct {
	queueRepo    QueueRepository
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	locker       Locker
	estimator    *estimator.Estimator
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
	logger Logger,
) *UseCase {
	return &UseCase{
		queueRepo:    queueRepo,
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		locker:       locker,
		estimator:    est,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.ShopID) == "" {
		return nil, fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	if !req.Refresh {
		return uc.view(ctx, req.ShopID, false)
	}

	var resp *Response
	err := uc.locker.DoLocked(ctx, domain.ShopLockKey(req.ShopID), func(lockCtx context.Context) error {
		var err error
		resp, err = uc.view(lockCtx, req.ShopID, true)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetQueue: refreshed %d estimates in shop=%s", resp.Refreshed, req.ShopID)
	return resp, nil
}

func (uc *UseCase) view(ctx context.Context, shopID string, persist bool) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Парикмахерская и каталог
	if _, err := uc.catalogRepo.GetShop(ctx, shopID); err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			return nil, ErrShopNotFound
		}
		uc.logger.Error("GetQueue: failed to get shop id=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	services, err := uc.catalogRepo.ListServices(ctx, shopID)
	if err != nil {
		uc.logger.Error("GetQueue: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}
	catalog := domain.NewCatalog(services)

	// 2. Очередь и сегодняшние записи
	snapshot, err := uc.queueRepo.ListActive(ctx, shopID)
	if err != nil {
		uc.logger.Error("GetQueue: failed to list queue: %v", err)
		return nil, fmt.Errorf("%w: failed to list queue: %v", ErrInternal, err)
	}
	if err := position.ValidateSnapshot(shopID, snapshot); err != nil {
		uc.logger.Error("GetQueue: queue of shop=%s is inconsistent: %v", shopID, err)
		return nil, fmt.Errorf("%w: %v", ErrQueueCorrupted, err)
	}

	today := domain.DayStart(now)
	bookings, err := uc.bookingRepo.GetByShopWithFilter(ctx, domain.ShopBookingsFilter{ShopID: shopID, Date: &today})
	if err != nil {
		uc.logger.Error("GetQueue: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp := &Response{ShopID: shopID}
	if current, ok := position.CurrentInService(snapshot); ok {
		resp.InService = &current
	}

	// 3. Оценка для каждого ожидающего
	for _, entry := range position.WaitingInOrder(snapshot) {
		est, err := uc.estimator.EstimateForEntry(shopID, snapshot, bookings, catalog, entry.ID, now)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to estimate entry id=%s: %v", ErrInternal, entry.ID, err)
		}

		if persist && entry.EstimatedWaitMinutes != est.TotalMinutes {
			entry.EstimatedWaitMinutes = est.TotalMinutes
			entry.UpdatedAt = now
			if err := uc.queueRepo.Update(ctx, &entry); err != nil {
				uc.logger.Error("GetQueue: failed to refresh entry id=%s: %v", entry.ID, err)
				return nil, fmt.Errorf("%w: failed to refresh entry: %v", ErrInternal, err)
			}
			resp.Refreshed++
		}

		resp.Waiting = append(resp.Waiting, WaitingEntry{Entry: entry, Estimate: est})
	}

	return resp, nil
}
