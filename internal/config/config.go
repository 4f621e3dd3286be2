package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BarberQueue/internal/domain"
)

// EnvConfigPath переменная окружения, переопределяющая путь к файлу конфигурации
const EnvConfigPath = "CONFIG_PATH"

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Database  DatabaseConfig  `toml:"database"`
	Storage   StorageConfig   `toml:"storage"`
	Redis     RedisConfig     `toml:"redis"`
	Queue     QueueConfig     `toml:"queue"`
	Slots     SlotsConfig     `toml:"slots"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type StorageConfig struct {
	// Driver "postgres" или "memory"
	Driver string `toml:"driver"`

	// SeedDemo заполняет memory-хранилище демонстрационной парикмахерской
	SeedDemo bool `toml:"seed_demo"`
}

type RedisConfig struct {
	Enabled          bool   `toml:"enabled"`
	Addr             string `toml:"addr"`
	Password         string `toml:"password"`
	DB               int    `toml:"db"`
	NotificationsKey string `toml:"notifications_key"`
}

// QueueConfig пороги оценки времени ожидания (в минутах)
type QueueConfig struct {
	DefaultServiceMinutes  int `toml:"default_service_minutes"`
	LookaheadMinutes       int `toml:"lookahead_minutes"`
	OverloadWarningMinutes int `toml:"overload_warning_minutes"`
	AdviseBookingMinutes   int `toml:"advise_booking_minutes"`
}

type SlotsConfig struct {
	IntervalMinutes int `toml:"interval_minutes"`
	MinLeadMinutes  int `toml:"min_lead_minutes"`

	// AdvanceBookingDays на сколько дней вперед можно записаться, 0 - без ограничения
	AdvanceBookingDays int `toml:"advance_booking_days"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "barber-queue",
			Path:        "/metrics",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "barber_queue",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres},
		Redis: RedisConfig{
			Addr:             "localhost:6379",
			NotificationsKey: "barberqueue:notifications",
		},
		Queue: QueueConfig{
			DefaultServiceMinutes:  domain.DefaultServiceMinutes,
			LookaheadMinutes:       domain.DefaultLookaheadMinutes,
			OverloadWarningMinutes: domain.DefaultOverloadMinutes,
			AdviseBookingMinutes:   domain.DefaultAdviseBookingLimit,
		},
		Slots: SlotsConfig{
			IntervalMinutes:    domain.DefaultSlotIntervalMinutes,
			MinLeadMinutes:     domain.DefaultMinLeadMinutes,
			AdvanceBookingDays: domain.DefaultAdvanceBookingDays,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 5,
			Burst:             10,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию.
// Если задана переменная окружения CONFIG_PATH, используется она.
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		problems = append(problems, fmt.Sprintf("storage.driver must be %q or %q, got %q",
			StorageDriverPostgres, StorageDriverMemory, c.Storage.Driver))
	}
	if c.Queue.DefaultServiceMinutes <= 0 {
		problems = append(problems, "queue.default_service_minutes must be positive")
	}
	if c.Queue.LookaheadMinutes < 0 {
		problems = append(problems, "queue.lookahead_minutes must not be negative")
	}
	if c.Queue.OverloadWarningMinutes <= 0 || c.Queue.AdviseBookingMinutes <= 0 {
		problems = append(problems, "queue thresholds must be positive")
	}
	if c.Slots.IntervalMinutes <= 0 || c.Slots.IntervalMinutes > 24*60 {
		problems = append(problems, "slots.interval_minutes must be in (0, 1440]")
	}
	if c.Slots.AdvanceBookingDays < 0 {
		problems = append(problems, "slots.advance_booking_days must not be negative")
	}
	if c.Slots.MinLeadMinutes < 0 {
		problems = append(problems, "slots.min_lead_minutes must not be negative")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required when redis is enabled")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		problems = append(problems, "rate_limit requires positive requests_per_second and burst")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
