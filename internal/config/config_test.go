package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 20*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.Facts.Interval)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Cache.SessionTTL)
	assert.Equal(t, time.Minute, cfg.Cache.CleanupInterval)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Empty(t, cfg.Content.Path)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("FACTS_INTERVAL", "2s")
	t.Setenv("CACHE_DRIVER", "REDIS")
	t.Setenv("REDIS_ADDRESS", "redis:6379")
	t.Setenv("LOGGER_LEVEL", "debug")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("SERVER_WRITE_TIMEOUT", "1m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Facts.Interval)
	assert.Equal(t, CacheDriverRedis, cfg.Cache.Driver)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8090, ReadTimeout: 20 * time.Second, WriteTimeout: 20 * time.Second},
			Facts:  FactsConfig{Interval: 5 * time.Second},
			Cache:  CacheConfig{Driver: CacheDriverMemory, CleanupInterval: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "invalid server.port"},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "server timeouts must be positive"},
		{"zero cleanup interval", func(c *Config) { c.Cache.CleanupInterval = 0 }, "cache.cleanup_interval must be positive"},
		{"zero interval", func(c *Config) { c.Facts.Interval = 0 }, "facts.interval must be positive"},
		{"unknown driver", func(c *Config) { c.Cache.Driver = "memcached" }, "unsupported cache.driver"},
		{"redis without address", func(c *Config) { c.Cache.Driver = CacheDriverRedis }, "redis.address is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
