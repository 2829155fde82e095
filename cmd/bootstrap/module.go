package bootstrap

import (
	"go.uber.org/fx"

	"cosme-store/cmd/bootstrap/components"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
