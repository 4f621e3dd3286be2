package call_next

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/position"
	catalogRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberQueue/internal/integrations/notifier"
	"github.com/m04kA/SMC-BarberQueue/pkg/metrics"
)

// UseCase вызывает первого ожидающего клиента, если мастер свободен
type UseCase struct {
	queueRepo    QueueRepository
	shopRepo     ShopRepository
	locker       Locker
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	queueRepo QueueRepository,
	shopRepo ShopRepository,
	locker Locker,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		queueRepo:    queueRepo,
		shopRepo:     shopRepo,
		locker:       locker,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.ShopID) == "" {
		return nil, fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	uc.logger.Info("CallNext: shop=%s", req.ShopID)
	now := uc.timeProvider.Now()

	var plan position.Plan

	err := uc.locker.DoLocked(ctx, domain.ShopLockKey(req.ShopID), func(lockCtx context.Context) error {
		// 1. Проверяем парикмахерскую
		if _, err := uc.shopRepo.GetShop(lockCtx, req.ShopID); err != nil {
			if errors.Is(err, catalogRepo.ErrShopNotFound) {
				return ErrShopNotFound
			}
			uc.logger.Error("CallNext: failed to get shop id=%s: %v", req.ShopID, err)
			return fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
		}

		// 2. Снимок очереди
		snapshot, err := uc.queueRepo.ListActive(lockCtx, req.ShopID)
		if err != nil {
			uc.logger.Error("CallNext: failed to list queue: %v", err)
			return fmt.Errorf("%w: failed to list queue: %v", ErrInternal, err)
		}

		// 3. Продвигаем очередь
		plan, err = position.AdvanceQueue(req.ShopID, snapshot, now)
		switch {
		case errors.Is(err, position.ErrEmptyQueue):
			return ErrEmptyQueue
		case errors.Is(err, position.ErrInvariantViolation):
			uc.logger.Error("CallNext: queue of shop=%s is inconsistent: %v", req.ShopID, err)
			return fmt.Errorf("%w: %v", ErrQueueCorrupted, err)
		case err != nil:
			return fmt.Errorf("%w: failed to advance queue: %v", ErrInternal, err)
		}
		if !plan.Changed {
			return nil
		}

		// 4. Сохраняем вызванного клиента и сдвинутые позиции (по возрастанию)
		called := plan.Entry
		if err := uc.queueRepo.Update(lockCtx, &called); err != nil {
			uc.logger.Error("CallNext: failed to update entry id=%s: %v", called.ID, err)
			return fmt.Errorf("%w: failed to update entry: %v", ErrInternal, err)
		}
		for i := range plan.Renumbered {
			if err := uc.queueRepo.Update(lockCtx, &plan.Renumbered[i]); err != nil {
				uc.logger.Error("CallNext: failed to renumber entry id=%s: %v", plan.Renumbered[i].ID, err)
				return fmt.Errorf("%w: failed to renumber entry: %v", ErrInternal, err)
			}
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrEmptyQueue) {
			uc.metrics.RecordAdvance(metrics.OutcomeEmpty)
			uc.logger.Info("CallNext: nobody is waiting in shop=%s", req.ShopID)
		}
		return nil, err
	}

	resp := &Response{
		Entry:   plan.Entry,
		Called:  plan.Changed,
		Waiting: len(position.WaitingInOrder(plan.Snapshot)),
	}

	if !plan.Changed {
		uc.metrics.RecordAdvance(metrics.OutcomeNoop)
		uc.logger.Info("CallNext: entry id=%s is still in service in shop=%s", plan.Entry.ID, req.ShopID)
		return resp, nil
	}

	uc.metrics.RecordAdvance(metrics.OutcomePromoted)
	uc.logger.Info("CallNext: entry id=%s called in shop=%s, %d still waiting", plan.Entry.ID, req.ShopID, resp.Waiting)

	if err := uc.notifier.Notify(ctx, notifier.QueueCalled(plan.Entry, now)); err != nil {
		uc.logger.Warn("CallNext: notification for entry id=%s not enqueued: %v", plan.Entry.ID, err)
	}

	return resp, nil
}
