package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberQueue/pkg/psqlbuilder"
)

// Repository справочные данные парикмахерских: сами парикмахерские, услуги и расписание.
// Только чтение: справочник ведётся внешней системой.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочника
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetShop получает парикмахерскую по ID
func (r *Repository) GetShop(ctx context.Context, shopID string) (*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at").
		From("shops").
		Where(squirrel.Eq{"id": shopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetShop - build select query: %v", ErrBuildQuery, err)
	}

	var shop domain.Shop
	err = executor.QueryRowContext(ctx, query, args...).Scan(&shop.ID, &shop.Name, &shop.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetShop - scan shop: %v", ErrScanRow, err)
	}

	return &shop, nil
}

// ListServices получает все услуги парикмахерской
func (r *Repository) ListServices(ctx context.Context, shopID string) ([]domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "shop_id", "name", "average_duration_minutes", "price").
		From("services").
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.ShopID, &s.Name, &s.AverageDurationMinutes, &s.Price); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan service: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetService получает услугу парикмахерской по ID
func (r *Repository) GetService(ctx context.Context, shopID, serviceID string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "shop_id", "name", "average_duration_minutes", "price").
		From("services").
		Where(squirrel.Eq{"id": serviceID, "shop_id": shopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.ShopID, &s.Name, &s.AverageDurationMinutes, &s.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListSchedules получает расписание парикмахерской по дням недели
func (r *Repository) ListSchedules(ctx context.Context, shopID string) ([]domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("shop_id", "weekday", "open_time", "close_time", "is_closed").
		From("schedules").
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]domain.Schedule, 0)
	for rows.Next() {
		var (
			s       domain.Schedule
			weekday int
		)
		if err := rows.Scan(&s.ShopID, &weekday, &s.OpenTime, &s.CloseTime, &s.IsClosed); err != nil {
			return nil, fmt.Errorf("%w: ListSchedules - scan schedule: %v", ErrScanRow, err)
		}
		s.Weekday = time.Weekday(weekday)
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}
