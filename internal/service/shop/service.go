package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberQueue/internal/service/shop/models"
)

// Service справочные данные парикмахерской: каталог услуг и расписание
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetCatalog возвращает услуги парикмахерской
func (s *Service) GetCatalog(ctx context.Context, shopID string) (*models.CatalogResponse, error) {
	s.logger.Info("GetCatalog: shop=%s", shopID)

	shop, err := s.getShop(ctx, shopID, "GetCatalog")
	if err != nil {
		return nil, err
	}

	services, err := s.catalogRepo.ListServices(ctx, shopID)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list services for shop=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCatalog(shop, services), nil
}

// GetWeekSchedule возвращает рабочие часы на все дни недели
func (s *Service) GetWeekSchedule(ctx context.Context, shopID string) (*models.ScheduleResponse, error) {
	s.logger.Info("GetWeekSchedule: shop=%s", shopID)

	if _, err := s.getShop(ctx, shopID, "GetWeekSchedule"); err != nil {
		return nil, err
	}

	schedules, err := s.catalogRepo.ListSchedules(ctx, shopID)
	if err != nil {
		s.logger.Error("GetWeekSchedule: failed to list schedules for shop=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetWeekSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeek(shopID, domain.NewWeekSchedule(schedules)), nil
}

func (s *Service) getShop(ctx context.Context, shopID, op string) (*domain.Shop, error) {
	shop, err := s.catalogRepo.GetShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			s.logger.Warn("%s: shop id=%s not found", op, shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("%s: failed to get shop id=%s: %v", op, shopID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return shop, nil
}
