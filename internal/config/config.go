package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Facts   FactsConfig
	Cache   CacheConfig
	Redis   RedisConfig
	Content ContentConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Env   string `yaml:"env"`
	Level string `yaml:"level"`
}

// FactsConfig controls the fact rotation timer.
type FactsConfig struct {
	Interval time.Duration
}

type CacheConfig struct {
	Driver     string `yaml:"driver"` // "memory" or "redis"
	SessionTTL time.Duration
	// CleanupInterval is how often the memory driver sweeps expired entries.
	CleanupInterval time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ContentConfig points at an optional catalog file overriding the embedded one.
type ContentConfig struct {
	Path string `yaml:"path"`
}

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("facts.interval", "5s")
	v.SetDefault("cache.driver", CacheDriverMemory)
	v.SetDefault("cache.session_ttl", "24h")
	v.SetDefault("cache.cleanup_interval", "1m")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("content.path", "")
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env cover every key.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Facts: FactsConfig{
			Interval: v.GetDuration("facts.interval"),
		},
		Cache: CacheConfig{
			Driver:          strings.ToLower(v.GetString("cache.driver")),
			SessionTTL:      v.GetDuration("cache.session_ttl"),
			CleanupInterval: v.GetDuration("cache.cleanup_interval"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Content: ContentConfig{
			Path: v.GetString("content.path"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive, got read=%s write=%s", c.Server.ReadTimeout, c.Server.WriteTimeout)
	}
	if c.Facts.Interval <= 0 {
		return fmt.Errorf("facts.interval must be positive, got %s", c.Facts.Interval)
	}
	switch c.Cache.Driver {
	case CacheDriverMemory:
		if c.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("cache.cleanup_interval must be positive, got %s", c.Cache.CleanupInterval)
		}
	case CacheDriverRedis:
		if c.Redis.Address == "" {
			return fmt.Errorf("redis.address is required when cache.driver is %q", CacheDriverRedis)
		}
	default:
		return fmt.Errorf("unsupported cache.driver: %q", c.Cache.Driver)
	}
	return nil
}
