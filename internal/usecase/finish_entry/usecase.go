package finish_entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/position"
	queueRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/queue"
)

// UseCase завершает обслуживание, отмечает неявку или отменяет запись очереди
type UseCase struct {
	queueRepo    QueueRepository
	locker       Locker
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(queueRepo QueueRepository, locker Locker, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		queueRepo:    queueRepo,
		locker:       locker,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FinishEntry: shop=%s, entry=%s, status=%s", req.ShopID, req.EntryID, req.Status)

	// 1. Валидация
	target, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("FinishEntry: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var plan position.Plan

	// 2. Переход и перенумерация под блокировкой парикмахерской
	err = uc.locker.DoLocked(ctx, domain.ShopLockKey(req.ShopID), func(lockCtx context.Context) error {
		snapshot, err := uc.queueRepo.ListActive(lockCtx, req.ShopID)
		if err != nil {
			uc.logger.Error("FinishEntry: failed to list queue: %v", err)
			return fmt.Errorf("%w: failed to list queue: %v", ErrInternal, err)
		}

		plan, err = position.Finish(req.ShopID, snapshot, req.EntryID, target, now)
		switch {
		case errors.Is(err, position.ErrEntryNotFound):
			// запись могла уже выйти из очереди
			return uc.explainMissing(lockCtx, req, target)
		case errors.Is(err, position.ErrInvalidTransition):
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		case errors.Is(err, position.ErrInvariantViolation):
			uc.logger.Error("FinishEntry: queue of shop=%s is inconsistent: %v", req.ShopID, err)
			return fmt.Errorf("%w: %v", ErrQueueCorrupted, err)
		case err != nil:
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		entry := plan.Entry
		if err := uc.queueRepo.Update(lockCtx, &entry); err != nil {
			uc.logger.Error("FinishEntry: failed to update entry id=%s: %v", entry.ID, err)
			return fmt.Errorf("%w: failed to update entry: %v", ErrInternal, err)
		}
		for i := range plan.Renumbered {
			if err := uc.queueRepo.Update(lockCtx, &plan.Renumbered[i]); err != nil {
				uc.logger.Error("FinishEntry: failed to renumber entry id=%s: %v", plan.Renumbered[i].ID, err)
				return fmt.Errorf("%w: failed to renumber entry: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrEntryNotFound) {
			uc.logger.Warn("FinishEntry: %v", err)
		}
		return nil, err
	}

	uc.metrics.RecordExit(string(target))
	uc.logger.Info("FinishEntry: entry id=%s is %s, %d entries shifted", plan.Entry.ID, target, len(plan.Renumbered))

	return &Response{Entry: plan.Entry, Shifted: len(plan.Renumbered)}, nil
}

// explainMissing отличает несуществующую запись от уже завершенной
func (uc *UseCase) explainMissing(ctx context.Context, req *Request, target domain.QueueStatus) error {
	stored, err := uc.queueRepo.GetByID(ctx, req.ShopID, req.EntryID)
	if err != nil {
		if errors.Is(err, queueRepo.ErrEntryNotFound) {
			return fmt.Errorf("%w: id=%s", ErrEntryNotFound, req.EntryID)
		}
		uc.logger.Error("FinishEntry: failed to get entry id=%s: %v", req.EntryID, err)
		return fmt.Errorf("%w: failed to get entry: %v", ErrInternal, err)
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, stored.Status, target)
}
