package components

import (
	"log/slog"

	"market-admin/internal/pkg/config"
	"market-admin/internal/usecase/commands"
	"market-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingLifecycle,
		commands.NewCatalogCommands,
		commands.NewBannerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
		NewDashboardQueries,
	),
)

func NewDashboardQueries(stats queries.StatsReader, banners queries.BannerReader, cfg config.Config, logger *slog.Logger) queries.DashboardQueries {
	return queries.NewDashboardQueries(stats, banners, cfg.App.DefaultBannerURL, logger)
}
