package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the quote service.
type Config struct {
	ServerAddress   string
	PostgresURL     string
	LogLevel        string
	NotifyQueueSize int
	MigrationsDir   string
}

// Load populates config from the environment, reading a local .env first
// when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ServerAddress:   ":8080",
		LogLevel:        "info",
		NotifyQueueSize: 64,
		MigrationsDir:   "file://migrations",
	}

	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		cfg.ServerAddress = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		cfg.MigrationsDir = v
	}

	cfg.PostgresURL = os.Getenv("POSTGRES_CONN")
	if cfg.PostgresURL == "" {
		return cfg, fmt.Errorf("missing required environment variable: POSTGRES_CONN")
	}

	return cfg, nil
}
