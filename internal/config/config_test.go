package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[storage]
driver = "memory"

[queue]
overload_warning_minutes = 90

[redis]
enabled = true
addr = "redis:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 90, cfg.Queue.OverloadWarningMinutes)
	assert.Equal(t, 30, cfg.Queue.DefaultServiceMinutes)
	assert.Equal(t, 60, cfg.Queue.LookaheadMinutes)
	assert.Equal(t, 180, cfg.Queue.AdviseBookingMinutes)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "barberqueue:notifications", cfg.Redis.NotificationsKey)
}

func TestLoadUsesEnvPath(t *testing.T) {
	path := writeConfig(t, "[server]\nhttp_port = 7070\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"bad driver": func(c *Config) {
			c.Storage.Driver = "mongo"
		},
		"zero interval": func(c *Config) {
			c.Slots.IntervalMinutes = 0
		},
		"zero default": func(c *Config) {
			c.Queue.DefaultServiceMinutes = 0
		},
		"redis without addr": func(c *Config) {
			c.Redis.Enabled = true
			c.Redis.Addr = ""
		},
		"rate limit burst": func(c *Config) {
			c.RateLimit.Burst = 0
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestDSN(t *testing.T) {
	db := Default().Database
	db.Password = "secret"
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=barber_queue sslmode=disable", db.DSN())
}
