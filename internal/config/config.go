package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/polithane/polithane/internal/calendar"
)

type Config struct {
	AppEnv      string
	Port        string
	LogLevel    string
	LogFormat   string
	DatabaseURL string
	RedisURL    string
	// ElectionWindows configure the election calendar collaborator.
	ElectionWindows []calendar.Window
	// Trend defaults used when no topic-matching/virality subsystem is wired.
	TopicMatchBase     float64
	ViralPotentialBase float64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	windows, err := calendar.ParseWindows(getEnv("ELECTION_WINDOWS", ""))
	if err != nil {
		return nil, fmt.Errorf("ELECTION_WINDOWS is invalid: %w", err)
	}
	cfg.ElectionWindows = windows

	cfg.TopicMatchBase, err = getEnvFloat("TOPIC_MATCH_BASE", 0)
	if err != nil {
		return nil, err
	}
	cfg.ViralPotentialBase, err = getEnvFloat("VIRAL_POTENTIAL_BASE", 0)
	if err != nil {
		return nil, err
	}
	if cfg.TopicMatchBase < 0 || cfg.TopicMatchBase > 100 {
		return nil, fmt.Errorf("TOPIC_MATCH_BASE must be within [0,100]")
	}
	if cfg.ViralPotentialBase < 0 || cfg.ViralPotentialBase > 100 {
		return nil, fmt.Errorf("VIRAL_POTENTIAL_BASE must be within [0,100]")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return parsed, nil
}
