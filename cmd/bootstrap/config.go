package bootstrap

import (
	"market-admin/internal/pkg/config"
	"market-admin/internal/usecase"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewRoutePaths,
	),
)

func NewRoutePaths(cfg config.Config) usecase.RoutePaths {
	return usecase.RoutePaths{
		PublicPrefix:       cfg.Guard.PublicPrefix,
		LoginPath:          cfg.Guard.LoginPath,
		ChangePasswordPath: cfg.Guard.ChangePasswordPath,
	}
}
