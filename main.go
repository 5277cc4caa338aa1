package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealer-finance/config"
	httpLayer "dealer-finance/http"
	"dealer-finance/logger"
	"dealer-finance/repository"
	"dealer-finance/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "dealer-finance",
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})

	if err := run(cfg); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exited")
}

func run(cfg *config.Config) error {
	loanRepo := repository.NewLoanRepositoryMemory(cfg.QuoteHistoryLimit)

	var (
		cache repository.CacheRepository
		ready []httpLayer.Pinger
	)
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.QuoteCacheTTL)
		defer redisCache.Close()
		cache = redisCache
		ready = append(ready, redisCache)
		slog.Info("Using Redis quote cache", "addr", cfg.RedisAddr)
	} else {
		cache = repository.NewLRUCache(cfg.QuoteCacheSize, cfg.QuoteCacheTTL)
		slog.Info("Using in-process quote cache", "size", cfg.QuoteCacheSize)
	}

	vehicles, err := repository.LoadVehiclesYAML(cfg.InventoryFile)
	if err != nil {
		return fmt.Errorf("load inventory: %w", err)
	}
	slog.Info("Inventory loaded", "file", cfg.InventoryFile, "vehicles", len(vehicles))
	vehicleRepo := repository.NewVehicleRepositoryMemory(vehicles)

	loanService := service.NewLoanService(loanRepo, cache, service.NewMoneyFormatter(cfg.CurrencyLocale))
	termComparisonService := service.NewTermComparisonService(loanService)
	inventoryService := service.NewInventoryService(vehicleRepo, loanService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(httpLayer.RouterDeps{
		Loans:       httpLayer.NewLoanHandler(loanService),
		Terms:       httpLayer.NewTermComparisonHandler(termComparisonService),
		Inventory:   httpLayer.NewInventoryHandler(inventoryService),
		RateLimiter: rateLimiter,
		Ready:       ready,
		AdminAPIKey: cfg.AdminAPIKey,
	})

	if cfg.AdminAPIKey == "" {
		slog.Info("Admin routes disabled, ADMIN_API_KEY not set")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("API listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		slog.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
