package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string

	// SessionBackend selects the session store implementation:
	// "sqlite" (default) or "memory" for targets without an embedded DB.
	SessionBackend string

	// AuthDelay is the synthetic latency applied to the mock login and
	// OTP verification calls.
	AuthDelay time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DatabasePath:   getEnv("DATABASE_PATH", "elixir.db"),
		JWTSecret:      getEnv("JWT_SECRET", "secret-key"),
		SessionBackend: getEnv("SESSION_BACKEND", "sqlite"),
		AuthDelay:      getEnvDuration("AUTH_DELAY_MS", 1500),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultMillis int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(defaultMillis) * time.Millisecond
}
