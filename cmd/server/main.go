package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skinlens/backend/config"
	httpDelivery "github.com/skinlens/backend/internal/delivery/http"
	"github.com/skinlens/backend/internal/infrastructure/cache"
	"github.com/skinlens/backend/internal/infrastructure/catalog"
	"github.com/skinlens/backend/internal/metrics"
	"github.com/skinlens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting SkinLens backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
	)

	// Load the product catalog once; it is immutable afterwards
	store, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("failed to load product catalog", zap.Error(err))
	}
	logger.Info("Product catalog loaded",
		zap.String("source", store.Source()),
		zap.Int("products", store.Len()),
	)

	// Initialize usecase layer
	service := usecase.NewRecommendationService(
		store,
		usecase.NewAliasResolverForLocale(cfg.Catalog.DefaultLocale),
		usecase.NewConcernMapper(nil),
		logger.Named("matching"),
		usecase.RecommendationConfig{
			DefaultLimit:       cfg.Matching.DefaultLimit,
			ReportConcurrency:  cfg.Matching.ReportConcurrency,
			EnableDebugLogging: cfg.Matching.DebugLogging,
		},
	)

	logger.Info("Matching configured",
		zap.Int("default_limit", cfg.Matching.DefaultLimit),
		zap.Int("max_limit", cfg.Matching.MaxLimit),
		zap.Int("report_concurrency", cfg.Matching.ReportConcurrency),
		zap.Bool("debug", cfg.Matching.DebugLogging),
	)

	// Optional response cache for analysis reports
	opts := httpDelivery.HandlerOptions{
		MaxLimit:     cfg.Matching.MaxLimit,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	}
	if cfg.Cache.Enabled {
		memoryCache := cache.NewMemoryCache(cache.DefaultCleanupInterval)
		defer memoryCache.Close()
		prometheus.MustRegister(metrics.NewCacheEntriesGauge(memoryCache.Size))

		opts.Cache = memoryCache
		opts.CacheTTL = cfg.Cache.TTL
		logger.Info("Response cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(service, store, logger.Named("http"), opts)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger.Named("http"))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("SkinLens backend stopped")
}

// newLogger builds a production JSON logger, or a console logger outside
// production, at the configured level
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
