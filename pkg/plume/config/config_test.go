package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "plume.db", cfg.DBPath)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, time.Duration(0), cfg.FeedCacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PLUME_PORT", "9090")
	t.Setenv("PLUME_DB_PATH", "/tmp/test.db")
	t.Setenv("PLUME_FEED_CACHE_TTL", "20s")
	t.Setenv("PLUME_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 20*time.Second, cfg.FeedCacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadPlainSecondsDuration(t *testing.T) {
	t.Setenv("PLUME_FEED_CACHE_TTL", "20")

	cfg := Load()

	assert.Equal(t, 20*time.Second, cfg.FeedCacheTTL)
}

func TestLoadMalformedDurationFallsBack(t *testing.T) {
	t.Setenv("PLUME_TOKEN_TTL", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}
