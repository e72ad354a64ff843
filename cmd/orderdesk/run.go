package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"go.uber.org/fx"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// lifecycle is the part of *fx.App the runner drives.
type lifecycle interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Done() <-chan os.Signal
	StopTimeout() time.Duration
}

// run starts the application, waits for a shutdown request and stops it
// within the configured stop timeout. The result is the process exit code.
func run(ctx context.Context, app lifecycle, logger *slog.Logger) int {
	if err := app.Start(ctx); err != nil {
		logger.Error("failed to start application", slog.Any("error", err))
		return exitFailure
	}
	logger.Info("application started")

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested", slog.Any("cause", context.Cause(ctx)))
	case sig := <-app.Done():
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()

	if err := app.Stop(stopCtx); err != nil {
		logger.Error("failed to stop application", slog.Any("error", err))
		return exitFailure
	}
	logger.Info("application stopped")
	return exitOK
}

var _ lifecycle = (*fx.App)(nil)
