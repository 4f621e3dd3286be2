package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	callNextHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/call_next"
	createBookingHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/create_booking"
	finishEntryHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/finish_entry"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/get_booking"
	getQueueHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/get_queue"
	getShopBookingsHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/get_shop_bookings"
	getShopScheduleHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/get_shop_schedule"
	getShopServicesHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/get_shop_services"
	joinQueueHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/join_queue"
	quoteWaitHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/quote_wait"
	updateBookingStatusHandler "github.com/m04kA/SMC-BarberQueue/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-BarberQueue/internal/api/middleware"
	"github.com/m04kA/SMC-BarberQueue/internal/config"
	"github.com/m04kA/SMC-BarberQueue/internal/engine/estimator"
	"github.com/m04kA/SMC-BarberQueue/internal/integrations/notifier"
	bookingsService "github.com/m04kA/SMC-BarberQueue/internal/service/bookings"
	shopService "github.com/m04kA/SMC-BarberQueue/internal/service/shop"
	callNextUC "github.com/m04kA/SMC-BarberQueue/internal/usecase/call_next"
	createBookingUC "github.com/m04kA/SMC-BarberQueue/internal/usecase/create_booking"
	finishEntryUC "github.com/m04kA/SMC-BarberQueue/internal/usecase/finish_entry"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberQueue/internal/usecase/get_available_slots"
	getQueueUC "github.com/m04kA/SMC-BarberQueue/internal/usecase/get_queue"
	joinQueueUC "github.com/m04kA/SMC-BarberQueue/internal/usecase/join_queue"
	quoteWaitUC "github.com/m04kA/SMC-BarberQueue/internal/usecase/quote_wait"
	"github.com/m04kA/SMC-BarberQueue/pkg/logger"
	"github.com/m04kA/SMC-BarberQueue/pkg/metrics"
)

// queueNotifier общий интерфейс redis- и log-уведомлений
type queueNotifier interface {
	Notify(ctx context.Context, msg notifier.Message) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BarberQueue...")

	// Метрики нужны use case'ам всегда; при выключенных метриках пишем в приватный регистр
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegisterer(prometheus.NewRegistry(), cfg.Metrics.ServiceName)
	}
	stopMetricsCh := make(chan struct{})

	// Хранилище: postgres или memory
	store, err := openStorage(cfg, metricsCollector, log, stopMetricsCh)
	if err != nil {
		log.Fatal("Failed to open storage (driver=%s): %v", cfg.Storage.Driver, err)
	}
	defer store.close()
	log.Info("Storage initialized (driver=%s)", cfg.Storage.Driver)

	// Уведомления клиентов
	var notify queueNotifier
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to redis (addr=%s): %v", cfg.Redis.Addr, err)
		}
		notify = notifier.NewRedisNotifier(rdb, cfg.Redis.NotificationsKey, log, metricsCollector)
		log.Info("Redis notifier enabled (addr=%s, key=%s)", cfg.Redis.Addr, cfg.Redis.NotificationsKey)
	} else {
		notify = notifier.NewLogNotifier(log, metricsCollector)
		log.Info("Redis disabled, notifications are only logged")
	}

	est := estimator.New(estimator.Config{
		DefaultServiceMinutes:  cfg.Queue.DefaultServiceMinutes,
		LookaheadMinutes:       cfg.Queue.LookaheadMinutes,
		OverloadWarningMinutes: cfg.Queue.OverloadWarningMinutes,
	})

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(store.bookings, store.locker, log)
	shopSvc := shopService.NewService(store.catalog, log)

	// Инициализируем use cases
	joinQueueUseCase := joinQueueUC.NewUseCase(
		store.queue,
		store.bookings,
		store.catalog,
		store.locker,
		est,
		cfg.Queue.AdviseBookingMinutes,
		notify,
		metricsCollector,
		log,
	)
	quoteWaitUseCase := quoteWaitUC.NewUseCase(
		store.queue,
		store.bookings,
		store.catalog,
		est,
		cfg.Queue.AdviseBookingMinutes,
		log,
	)
	getQueueUseCase := getQueueUC.NewUseCase(
		store.queue,
		store.bookings,
		store.catalog,
		store.locker,
		est,
		log,
	)
	callNextUseCase := callNextUC.NewUseCase(
		store.queue,
		store.catalog,
		store.locker,
		notify,
		metricsCollector,
		log,
	)
	finishEntryUseCase := finishEntryUC.NewUseCase(store.queue, store.locker, metricsCollector, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		store.bookings,
		store.catalog,
		getAvailableSlotsUC.Config{
			IntervalMinutes: cfg.Slots.IntervalMinutes,
			MinLeadMinutes:  cfg.Slots.MinLeadMinutes,
		},
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		store.bookings,
		store.catalog,
		store.locker,
		createBookingUC.Config{
			IntervalMinutes:    cfg.Slots.IntervalMinutes,
			MinLeadMinutes:     cfg.Slots.MinLeadMinutes,
			AdvanceBookingDays: cfg.Slots.AdvanceBookingDays,
		},
		notify,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	joinQueue := joinQueueHandler.NewHandler(joinQueueUseCase, log)
	getQueue := getQueueHandler.NewHandler(getQueueUseCase, log)
	quoteWait := quoteWaitHandler.NewHandler(quoteWaitUseCase, log)
	callNext := callNextHandler.NewHandler(callNextUseCase, log)
	finishEntry := finishEntryHandler.NewHandler(finishEntryUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getShopBookings := getShopBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getShopServices := getShopServicesHandler.NewHandler(shopSvc, log)
	getShopSchedule := getShopScheduleHandler.NewHandler(shopSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Живая очередь ---
	api.HandleFunc("/shops/{shopId}/queue", getQueue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/queue/estimate", quoteWait.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/queue/next", callNext.Handle).Methods(http.MethodPost)
	api.HandleFunc("/shops/{shopId}/queue/{entryId}/status", finishEntry.Handle).Methods(http.MethodPatch)

	// --- Каталог и расписание ---
	api.HandleFunc("/shops/{shopId}/services", getShopServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/schedule", getShopSchedule.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/shops/{shopId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/shops/{shopId}/bookings", getShopBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Приём клиентов (ограничение частоты на парикмахерскую) ---
	intake := api.PathPrefix("").Subrouter()
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 10*time.Minute)
		defer limiter.Stop()
		intake.Use(limiter.Middleware)
		log.Info("Rate limit enabled for intake endpoints (rps=%.2f, burst=%d)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	intake.HandleFunc("/shops/{shopId}/queue", joinQueue.Handle).Methods(http.MethodPost)
	intake.HandleFunc("/shops/{shopId}/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Warn("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
