package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by parseEnv. A .env file in the working
// directory is loaded first; real environment variables win over it.
const (
	envBaseURL = "SAVINGS_API_BASE_URL"
	envDevHost = "SAVINGS_DEV_HOST"
	envDBPath  = "SAVINGS_DB_PATH"
	envKeyPath = "SAVINGS_KEY_PATH"
	envTimeout = "SAVINGS_REQUEST_TIMEOUT"
)

func parseEnv(cfg *Config) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envDevHost); v != "" {
		cfg.DevServerHost = v
	}
	if v := os.Getenv(envDBPath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envKeyPath); v != "" {
		cfg.KeyPath = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
