package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	"github.com/m04kA/SMC-BarberQueue/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberQueue/pkg/psqlbuilder"
)

const table = "queue_entries"

var columns = []string{
	"id",
	"shop_id",
	"service_id",
	"customer_name",
	"customer_phone",
	"status",
	"position",
	"estimated_wait_minutes",
	"deposit_reference",
	"created_at",
	"called_at",
	"completed_at",
	"updated_at",
}

// Repository репозиторий живой очереди
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive возвращает снимок очереди: записи waiting и in_service.
// Внутри транзакции строки блокируются FOR UPDATE.
func (r *Repository) ListActive(ctx context.Context, shopID string) ([]domain.QueueEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"shop_id": shopID,
			"status":  []string{string(domain.QueueWaiting), string(domain.QueueInService)},
		}).
		OrderBy("position ASC", "created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.QueueEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan entry: %v", ErrScanRow, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// GetByID получает запись очереди парикмахерской по ID
func (r *Repository) GetByID(ctx context.Context, shopID, id string) (*domain.QueueEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "shop_id": shopID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	entry, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan entry: %v", ErrScanRow, err)
	}

	return entry, nil
}

// Create сохраняет новую запись очереди
func (r *Repository) Create(ctx context.Context, entry *domain.QueueEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			entry.ID,
			entry.ShopID,
			entry.ServiceID,
			entry.CustomerName,
			entry.CustomerPhone,
			entry.Status,
			entry.Position,
			entry.EstimatedWaitMinutes,
			entry.DepositReference,
			entry.CreatedAt,
			entry.CalledAt,
			entry.CompletedAt,
			entry.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// Update сохраняет изменяемые поля записи: статус, позицию, оценку и отметки времени
func (r *Repository) Update(ctx context.Context, entry *domain.QueueEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", entry.Status).
		Set("position", entry.Position).
		Set("estimated_wait_minutes", entry.EstimatedWaitMinutes).
		Set("called_at", entry.CalledAt).
		Set("completed_at", entry.CompletedAt).
		Set("updated_at", entry.UpdatedAt).
		Where(squirrel.Eq{"id": entry.ID, "shop_id": entry.ShopID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.QueueEntry, error) {
	var (
		entry     domain.QueueEntry
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&entry.ID,
		&entry.ShopID,
		&entry.ServiceID,
		&entry.CustomerName,
		&entry.CustomerPhone,
		&entry.Status,
		&entry.Position,
		&entry.EstimatedWaitMinutes,
		&entry.DepositReference,
		&entry.CreatedAt,
		&entry.CalledAt,
		&entry.CompletedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.UpdatedAt = updatedAt.Time
	return &entry, nil
}
