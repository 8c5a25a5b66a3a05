package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	WorldDir    string // directory holding world definition files
	UI          string // "tui" or "plain"
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		WorldDir:    getEnv("WORLD_DIR", "data/worlds"),
		UI:          strings.ToLower(getEnv("UI", "tui")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
