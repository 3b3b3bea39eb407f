// Package config maps environment variables onto the server settings.
// Command-line flags in cmd/tastelog override the values loaded here.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the server.
type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:./data/tastelog.db"`
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"./data/uploads"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string     `env:"LOG_FILE"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
