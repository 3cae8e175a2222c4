// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store driver names accepted by Config.StoreDriver.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config holds all runtime settings with local-development defaults.
type Config struct {
	Port        string     `env:"PORT" envDefault:"8080"`
	StoreDriver string     `env:"STORE_DRIVER" envDefault:"memory"`
	SQLiteDSN   string     `env:"SQLITE_DSN" envDefault:":memory:"`
	WebDir      string     `env:"WEB_DIR" envDefault:"./web"`
	LogFormat   string     `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file when present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StoreDriver != DriverMemory && cfg.StoreDriver != DriverSQLite {
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}

// NewLogger builds the process logger from the configured format and level.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
