// Package config loads server configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	Port         string
	DBPath       string
	JWTSecret    string
	TokenTTL     time.Duration
	FeedCacheTTL time.Duration
	LogLevel     string
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:         getEnv("PLUME_PORT", "8080"),
		DBPath:       getEnv("PLUME_DB_PATH", "plume.db"),
		JWTSecret:    getEnv("PLUME_JWT_SECRET", ""),
		TokenTTL:     getEnvDuration("PLUME_TOKEN_TTL", 24*time.Hour),
		FeedCacheTTL: getEnvDuration("PLUME_FEED_CACHE_TTL", 0),
		LogLevel:     getEnv("PLUME_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// Plain seconds are accepted too, e.g. PLUME_FEED_CACHE_TTL=20
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
