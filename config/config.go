package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	RedisAddr      string // empty selects the in-process LRU cache
	QuoteCacheSize int
	QuoteCacheTTL  time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration

	QuoteHistoryLimit int
	InventoryFile     string
	CurrencyLocale    string

	AdminAPIKey string // empty disables the admin routes
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine, real env vars may be set instead
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		Version:        getEnv("VERSION", "dev"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		InventoryFile:  getEnv("INVENTORY_FILE", "data/inventory.yaml"),
		CurrencyLocale: getEnv("CURRENCY_LOCALE", "en-IN"),
		AdminAPIKey:    getEnv("ADMIN_API_KEY", ""),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.QuoteCacheSize, err = getEnvInt("QUOTE_CACHE_SIZE", 1024); err != nil {
		return nil, err
	}
	if cfg.QuoteCacheTTL, err = getEnvDuration("QUOTE_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RateLimitRequests, err = getEnvInt("RATE_LIMIT_REQUESTS", 30); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = getEnvDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	if cfg.QuoteHistoryLimit, err = getEnvInt("QUOTE_HISTORY_LIMIT", 500); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that the env parsing cannot.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}
	if c.QuoteCacheSize <= 0 {
		return fmt.Errorf("QUOTE_CACHE_SIZE must be positive, got %d", c.QuoteCacheSize)
	}
	if c.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.RateLimitRequests)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
