package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BarberQueue/internal/config"
	"github.com/m04kA/SMC-BarberQueue/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberQueue/internal/infra/storage/memory"
	queueRepo "github.com/m04kA/SMC-BarberQueue/internal/infra/storage/queue"
	"github.com/m04kA/SMC-BarberQueue/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberQueue/pkg/logger"
	"github.com/m04kA/SMC-BarberQueue/pkg/metrics"
	"github.com/m04kA/SMC-BarberQueue/pkg/txmanager"
)

type queueStore interface {
	ListActive(ctx context.Context, shopID string) ([]domain.QueueEntry, error)
	GetByID(ctx context.Context, shopID, id string) (*domain.QueueEntry, error)
	Create(ctx context.Context, entry *domain.QueueEntry) error
	Update(ctx context.Context, entry *domain.QueueEntry) error
}

type bookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByShopWithFilter(ctx context.Context, filter domain.ShopBookingsFilter) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, reason *string) error
}

type catalogStore interface {
	GetShop(ctx context.Context, shopID string) (*domain.Shop, error)
	ListServices(ctx context.Context, shopID string) ([]domain.Service, error)
	GetService(ctx context.Context, shopID, serviceID string) (*domain.Service, error)
	ListSchedules(ctx context.Context, shopID string) ([]domain.Schedule, error)
}

type shopLocker interface {
	DoLocked(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// storage репозитории и блокировка парикмахерской выбранного драйвера
type storage struct {
	queue    queueStore
	bookings bookingStore
	catalog  catalogStore
	locker   shopLocker

	close func() error
}

func openStorage(cfg *config.Config, m *metrics.Metrics, log *logger.Logger, stopCh <-chan struct{}) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		return openMemory(cfg, log), nil
	default:
		return openPostgres(cfg, m, log, stopCh)
	}
}

func openMemory(cfg *config.Config, log *logger.Logger) *storage {
	store := memory.NewStore()
	if cfg.Storage.SeedDemo {
		memory.SeedDemo(store)
		log.Info("Memory storage seeded with demo shop: shop_id=%s", memory.DemoShopID)
	}
	log.Warn("Using in-memory storage: data is lost on restart")

	return &storage{
		queue:    store.Queue(),
		bookings: store.Bookings(),
		catalog:  store.Catalog(),
		locker:   memory.NewLocker(),
		close:    func() error { return nil },
	}
}

func openPostgres(cfg *config.Config, m *metrics.Metrics, log *logger.Logger, stopCh <-chan struct{}) (*storage, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, m, stopCh)

	return &storage{
		queue:    queueRepo.NewRepository(wrappedDB),
		bookings: bookingRepo.NewRepository(wrappedDB),
		catalog:  catalogRepo.NewRepository(wrappedDB),
		locker:   txmanager.NewTransactionManager(wrappedDB),
		close:    db.Close,
	}, nil
}
