package bootstrap

import (
	"courier-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CourierModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
