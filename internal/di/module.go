package di

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/polkiloo/orderdesk/internal/app"
	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/logger"
	"github.com/polkiloo/orderdesk/internal/metrics"
	"github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/server/http/handlers"
	"github.com/polkiloo/orderdesk/internal/server/http/router"
	"github.com/polkiloo/orderdesk/internal/storage/memory"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// Module composes the whole application graph. Extra options are appended
// last so callers can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: l.With(slog.String("component", "fx"))}
		}),
		config.Module,
		logger.Module,
		memory.Module,
		metrics.Module,
		auth.Module,
		usecase.Module,
		fx.Provide(func(m *metrics.Metrics) usecase.Recorder { return m }),
		fx.Provide(func(f *app.OrderDeskFacade) handlers.OrderDeskFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
