package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newContactRule,
	NewAccountUseCase,
	NewOrderUseCase,
	func(u *AccountUseCase) AccountReader { return u },
)

// newContactRule maps the configured rule name to its implementation.
// Unknown names fall back to StrictContact.
func newContactRule(cfg *config.Config) ContactRule {
	if cfg.ContactRule == config.ContactRuleLenient {
		return LenientContact
	}
	return StrictContact
}
