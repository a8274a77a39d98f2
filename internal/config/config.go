// Package config loads the planner daemon's runtime configuration from
// .env files and environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration for cmd/plannerd.
type AppConfig struct {
	ListenAddr string
	LogDir     string
	Verbose    bool

	// RequestTimeout bounds a single /v1/plan call (internal/clique's own
	// soft deadline runs inside this window, not instead of it).
	RequestTimeout time.Duration
}

// Load loads configuration from a working-directory .env file (if present)
// then environment variables, falling back to defaults for anything unset.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}

	timeoutSecs, _ := strconv.Atoi(getEnv("PLANNER_REQUEST_TIMEOUT_SECONDS", "5"))

	cfg := &AppConfig{
		ListenAddr:     getEnv("PLANNER_LISTEN_ADDR", ":8080"),
		LogDir:         getEnv("PLANNER_LOG_DIR", "logs"),
		Verbose:        getEnvBool("VERBOSE", false),
		RequestTimeout: time.Duration(timeoutSecs) * time.Second,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
