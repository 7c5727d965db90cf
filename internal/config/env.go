// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds the settings of cmd/server.
type Server struct {
	HTTPAddr      string        `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCAddr      string        `env:"GRPC_ADDR" envDefault:":9090"`
	ConfigDir     string        `env:"CONFIG_DIR" envDefault:"config"`
	WatchInterval time.Duration `env:"WATCH_INTERVAL" envDefault:"5s"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	APIKey        string        `env:"API_KEY"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer parses Server from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	if cfg.WatchInterval <= 0 {
		return Server{}, fmt.Errorf("parse env: WATCH_INTERVAL must be positive, got %s", cfg.WatchInterval)
	}
	return cfg, nil
}
