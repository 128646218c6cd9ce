package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment.
type Config struct {
	// DatabaseURL selects the document store. Empty means no store; the API
	// then serves demo projects and acknowledges contact messages without
	// persisting them.
	DatabaseURL  string        `env:"DATABASE_URL"`
	DatabaseName string        `env:"DATABASE_NAME"`
	Port         int           `env:"PORT" envDefault:"8000"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"INFO"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse(env.Options{})
}

// Parse parses the configuration with explicit env options.
func Parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("parse env: PORT out of range: %d", cfg.Port)
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// StoreConfigured reports whether both store variables are present.
func (c *Config) StoreConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseName != ""
}
