package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

type lifecycleStub struct {
	startErr error
	stopErr  error
	done     chan os.Signal
	stopped  bool
	deadline bool
}

func newLifecycleStub() *lifecycleStub {
	return &lifecycleStub{done: make(chan os.Signal, 1)}
}

func (s *lifecycleStub) Start(context.Context) error { return s.startErr }

func (s *lifecycleStub) Stop(ctx context.Context) error {
	s.stopped = true
	_, s.deadline = ctx.Deadline()
	return s.stopErr
}

func (s *lifecycleStub) Done() <-chan os.Signal { return s.done }

func (s *lifecycleStub) StopTimeout() time.Duration { return time.Second }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func cancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestRunStopsOnContextCancel(t *testing.T) {
	app := newLifecycleStub()

	code := run(cancelledContext(), app, discardLogger())

	assert.Equal(t, exitOK, code)
	assert.True(t, app.stopped)
	assert.True(t, app.deadline, "stop is bounded by the stop timeout")
}

func TestRunStopsOnSignal(t *testing.T) {
	app := newLifecycleStub()
	app.done <- os.Interrupt
	var buf bytes.Buffer

	code := run(context.Background(), app, slog.New(slog.NewJSONHandler(&buf, nil)))

	assert.Equal(t, exitOK, code)
	assert.True(t, app.stopped)
	assert.Contains(t, buf.String(), "shutdown signal received")
}

func TestRunStartFailure(t *testing.T) {
	app := newLifecycleStub()
	app.startErr = errors.New("boom")
	var buf bytes.Buffer

	code := run(context.Background(), app, slog.New(slog.NewJSONHandler(&buf, nil)))

	assert.Equal(t, exitFailure, code)
	assert.False(t, app.stopped)
	assert.Contains(t, buf.String(), "failed to start application")
	assert.Contains(t, buf.String(), "boom")
}

func TestRunStopFailure(t *testing.T) {
	app := newLifecycleStub()
	app.stopErr = errors.New("stuck")

	code := run(cancelledContext(), app, discardLogger())

	assert.Equal(t, exitFailure, code)
}

func TestRunWithFxApp(t *testing.T) {
	var stopped bool
	app := fx.New(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle, shutdowner fx.Shutdowner) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error { return shutdowner.Shutdown() },
				OnStop:  func(context.Context) error { stopped = true; return nil },
			})
		}),
	)

	code := run(context.Background(), app, discardLogger())

	assert.Equal(t, exitOK, code)
	assert.True(t, stopped)
}

func TestRunWithFailingFxApp(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error { return errors.New("listen failed") },
			})
		}),
	)

	code := run(context.Background(), app, discardLogger())

	assert.Equal(t, exitFailure, code)
}
