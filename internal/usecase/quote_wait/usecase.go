package quote_wait

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/policy"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/position"
	catalogRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/catalog"
)

// UseCase оценка ожидания для экрана "встать в очередь или записаться?".
// Ничего не записывает, поэтому работает без блокировки.
type UseCase struct {
	queueRepo    QueueRepository
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	estimator    *estimator.Estimator
	adviseLimit  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	queueRepo QueueRepository,
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	est *estimator.Estimator,
	adviseLimit int,
	logger Logger,
) *UseCase {
	return &UseCase{
		queueRepo:    queueRepo,
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		estimator:    est,
		adviseLimit:  adviseLimit,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.ShopID) == "" {
		return nil, fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 1. Парикмахерская и каталог
	if _, err := uc.catalogRepo.GetShop(ctx, req.ShopID); err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			return nil, ErrShopNotFound
		}
		uc.logger.Error("QuoteWait: failed to get shop id=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	services, err := uc.catalogRepo.ListServices(ctx, req.ShopID)
	if err != nil {
		uc.logger.Error("QuoteWait: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}
	catalog := domain.NewCatalog(services)

	// 2. Очередь и сегодняшние записи
	snapshot, err := uc.queueRepo.ListActive(ctx, req.ShopID)
	if err != nil {
		uc.logger.Error("QuoteWait: failed to list queue: %v", err)
		return nil, fmt.Errorf("%w: failed to list queue: %v", ErrInternal, err)
	}

	today := domain.DayStart(now)
	bookings, err := uc.bookingRepo.GetByShopWithFilter(ctx, domain.ShopBookingsFilter{ShopID: req.ShopID, Date: &today})
	if err != nil {
		uc.logger.Error("QuoteWait: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Оценка и совет
	requested, known := uc.estimator.ServiceMinutes(catalog, req.ServiceID)
	if !known {
		uc.logger.Warn("QuoteWait: unknown service id=%s in shop=%s, using %d minutes", *req.ServiceID, req.ShopID, requested)
	}

	est := uc.estimator.EstimateWait(req.ShopID, snapshot, bookings, catalog, requested, now)
	if len(est.UnknownServiceIDs) > 0 {
		uc.logger.Warn("QuoteWait: queue of shop=%s references unknown services %v", req.ShopID, est.UnknownServiceIDs)
	}

	return &Response{
		Estimate:       est,
		Advice:         policy.AdviseWithLimit(est, uc.adviseLimit),
		WaitingCount:   len(position.WaitingInOrder(snapshot)),
		ServiceMinutes: requested,
	}, nil
}
