package bootstrap

import (
	"market-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	APIClientModule,
	components.AdminAPIModule,
	components.UseCaseModule,
	components.HandlerModule,
)
