package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, "booking_events", cfg.BookingEventsKey)
	assert.Equal(t, float64(10), cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/hotel_test?sslmode=disable")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://u:p@db:5432/hotel_test?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("unparsable number", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_BURST", "lots")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad redis address", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "redis")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RedisAddr")
	})

	t.Run("non-positive rate limit", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_RPS", "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RateLimitRPS")
	})
}
