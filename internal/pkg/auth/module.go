package auth

import (
	"github.com/polkiloo/orderdesk/internal/config"
	"go.uber.org/fx"
)

// Module provides admin key verification via fx.
var Module = fx.Options(
	fx.Provide(newSecretHasher),
	fx.Provide(newAdminKey),
)

func newSecretHasher() SecretHasher {
	return NewBcryptHasher(0)
}

type adminKeyParams struct {
	fx.In

	Config *config.Config
	Hasher SecretHasher
}

func newAdminKey(p adminKeyParams) (*AdminKey, error) {
	return NewAdminKey(p.Hasher, p.Config.AdminKey)
}
