package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds settings read from the environment (and an optional .env file).
type Env struct {
	// Home overrides the data directory (SWATCH_HOME).
	Home string
	// PageSize overrides the configured page size when > 0 (SWATCH_PAGE_SIZE).
	PageSize int
	// Debug enables file logging (SWATCH_DEBUG).
	Debug bool
	// LogLevel is the minimum level for debug logs (SWATCH_LOG_LEVEL).
	LogLevel slog.Level
}

// LoadEnv loads a .env file from the working directory if present, then
// reads SWATCH_* variables. Real environment variables win over .env entries.
func LoadEnv() *Env {
	_ = godotenv.Load()
	return readEnv()
}

func readEnv() *Env {
	env := &Env{
		Home:     os.Getenv("SWATCH_HOME"),
		Debug:    parseBool(os.Getenv("SWATCH_DEBUG")),
		LogLevel: parseLevel(getEnvOrDefault("SWATCH_LOG_LEVEL", "debug")),
	}
	if n, err := strconv.Atoi(os.Getenv("SWATCH_PAGE_SIZE")); err == nil && n > 0 {
		env.PageSize = n
	}
	return env
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
