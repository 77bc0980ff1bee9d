package bootstrap

import (
	"slotbooker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
