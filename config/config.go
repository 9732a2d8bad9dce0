// Package config loads server settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings. Command-line flags may override
// Port and DBPath after loading.
type Config struct {
	Port              int      `env:"PAYENGINE_PORT"                envDefault:"8080"`
	DBPath            string   `env:"PAYENGINE_DB"                  envDefault:"payengine.db"`
	AllowedOrigins    []string `env:"PAYENGINE_ALLOWED_ORIGINS"     envDefault:"http://localhost:5173,http://localhost:8080" envSeparator:","`
	DefaultShiftHours float64  `env:"PAYENGINE_DEFAULT_SHIFT_HOURS" envDefault:"12"`
	SeedCatalog       bool     `env:"PAYENGINE_SEED_CATALOG"        envDefault:"true"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DefaultShiftHours <= 0 {
		return Config{}, fmt.Errorf("PAYENGINE_DEFAULT_SHIFT_HOURS must be positive, got %v", cfg.DefaultShiftHours)
	}
	return cfg, nil
}
