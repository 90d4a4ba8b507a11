// Command server runs the leap year HTTP API until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	adapthttp "github.com/jsamuelsen11/leapyear-service/internal/adapters/http"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/config"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/logging"
	"github.com/jsamuelsen11/leapyear-service/internal/platform/telemetry"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; it only exists on developer machines.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (e.g. local, dev, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otelProviders, err := telemetry.Init(context.Background(), cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flush(otelProviders, logger)

	server, err := resolveServer(newInjector(cfg, logger, otelProviders.Metrics))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("leap year service starting",
		slog.String("profile", profile),
		slog.Int64("max_range_span", cfg.Leap.MaxRangeSpan),
		slog.Int("max_batch_size", cfg.Leap.MaxBatchSize),
	)
	return serve(ctx, server, logger)
}

// serve runs server until it fails or ctx ends, then drains in-flight
// requests for at most drainTimeout.
func serve(ctx context.Context, server *adapthttp.Server, logger *slog.Logger) error {
	// Bind before waiting so a taken port fails fast.
	if err := server.Listen(); err != nil {
		return fmt.Errorf("listening: %w", err)
	}

	done := make(chan error, 1)
	go func() { done <- server.Start() }()

	select {
	case err := <-done:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown requested")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("server shutdown", slog.Any("error", err))
	}
	<-done

	logger.Info("shutdown complete")
	return nil
}

// flush exports whatever spans and metrics are still buffered.
func flush(p *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := p.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown", slog.Any("error", err))
	}
}
