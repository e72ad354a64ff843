package memory

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// Module wires in-memory storage as the repository.Store implementation.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.Store { return s },
		func(s *Storage) repository.AccountStore { return s },
		func(s *Storage) repository.OrderStore { return s },
	),
	fx.Invoke(registerLifecycle),
)

func newStorage() *Storage {
	return New()
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			stats := storage.Stats()
			logger.Info("discarding in-memory state",
				slog.Int("accounts", stats.Accounts),
				slog.Int("orders", stats.Orders),
			)
			return nil
		},
	})
}
