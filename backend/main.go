// ABOUTME: Entry point for the drone design calculator backend service
// ABOUTME: Serves the design API and shuts down gracefully on SIGINT/SIGTERM

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/markalston/drone-design-calculator/backend/config"
	"github.com/markalston/drone-design-calculator/backend/handlers"
	"github.com/markalston/drone-design-calculator/backend/logger"
	"github.com/markalston/drone-design-calculator/backend/metrics"
	"github.com/markalston/drone-design-calculator/backend/middleware"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	slog.Info("Starting Drone Design Calculator Backend", "version", cfg.Version)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		c, err := metrics.NewCollector(reg)
		if err != nil {
			return err
		}
		collector = c
		slog.Info("Metrics enabled", "path", "/metrics")
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimitDefault, time.Minute)
		slog.Info("Rate limiting enabled", "requests_per_minute", cfg.RateLimitDefault)
	} else {
		slog.Warn("Rate limiting disabled")
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		slog.Info("CORS: no origins allowed, cross-origin requests blocked")
	} else {
		slog.Info("CORS configured", "origins", cfg.CORSAllowedOrigins)
	}

	h := handlers.NewHandler(cfg, collector)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Router(limiter),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
