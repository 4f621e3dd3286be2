package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberQueue/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	locker      Locker
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, locker Locker, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		locker:      locker,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByShop получает бронирования парикмахерской с фильтрацией
//
// Примеры использования:
// - Все активные бронирования: ListByShop(ctx, &GetShopBookingsRequest{ShopID: "s1"})
// - Календарь на дату: указать Date
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) ListByShop(ctx context.Context, req *models.GetShopBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("ListByShop: fetching bookings for shop=%s", req.ShopID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if strings.TrimSpace(req.ShopID) == "" {
		return nil, fmt.Errorf("%w: shopID is required", ErrInvalidInput)
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListByShop: invalid filter for shop=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByShopWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByShop: repository error for shop=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: ListByShop - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByShop: successfully fetched %d bookings for shop=%s", len(bookings), req.ShopID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование по таблице переходов.
// Отмена и неявка освобождают слот в календаре.
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, req.Status)

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellationReason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	// Получаем бронирование, чтобы узнать парикмахерскую
	booking, err := s.get(ctx, bookingID, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	var updated *domain.Booking
	err = s.locker.DoLocked(ctx, domain.ShopLockKey(booking.ShopID), func(lockCtx context.Context) error {
		// Перечитываем под блокировкой
		current, err := s.get(lockCtx, bookingID, "UpdateStatus")
		if err != nil {
			return err
		}

		if !domain.CanTransitionBooking(current.Status, newStatus) {
			s.logger.Warn("UpdateStatus: booking id=%s cannot move %s -> %s", bookingID, current.Status, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, newStatus)
		}

		var reason *string
		if newStatus == domain.StatusCancelled {
			reason = req.CancellationReason
		}

		if err := s.bookingRepo.UpdateStatus(lockCtx, bookingID, newStatus, reason); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		updated, err = s.get(lockCtx, bookingID, "UpdateStatus")
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}

func (s *Service) get(ctx context.Context, id, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
