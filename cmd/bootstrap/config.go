package bootstrap

import (
	"go.uber.org/fx"

	"cosme-store/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
