package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
)

// Config is read from the environment at startup.
type Config struct {
	// DBPath may start with ~; an empty value means ~/.taskhero.db.
	DBPath          string        `env:"TASKHERO_DB_PATH"`
	Timezone        string        `env:"TASKHERO_TIMEZONE"`
	RefreshInterval time.Duration `env:"TASKHERO_REFRESH_INTERVAL" envDefault:"1s"`
	LogLevel        string        `env:"TASKHERO_LOG_LEVEL"        envDefault:"info"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = LogLevelInfo
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("TASKHERO_REFRESH_INTERVAL must be positive, got %s", c.RefreshInterval)
	}
	switch c.LogLevel {
	case LogLevelInfo, LogLevelDebug:
	default:
		return fmt.Errorf("TASKHERO_LOG_LEVEL must be info or debug, got %q", c.LogLevel)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; empty means the process-local zone.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("TASKHERO_TIMEZONE %q: %w", tz, err)
	}
	return loc, nil
}

func (c *Config) Debug() bool {
	return c.LogLevel == LogLevelDebug
}
