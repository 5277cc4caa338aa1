package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "QUOTE_CACHE_TTL", "RATE_LIMIT_REQUESTS", "REDIS_ADDR", "CURRENCY_LOCALE", "ADMIN_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.QuoteCacheTTL)
	assert.Equal(t, 30, cfg.RateLimitRequests)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.AdminAPIKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("QUOTE_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_WINDOW", "2m")
	t.Setenv("CURRENCY_LOCALE", "en-US")
	t.Setenv("ADMIN_API_KEY", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.QuoteCacheTTL)
	assert.Equal(t, 2*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, "en-US", cfg.CurrencyLocale)
	assert.Equal(t, "s3cret", cfg.AdminAPIKey)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"PORT":                "eighty",
		"QUOTE_CACHE_TTL":     "forever",
		"RATE_LIMIT_REQUESTS": "0",
		"QUOTE_CACHE_SIZE":    "-1",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
