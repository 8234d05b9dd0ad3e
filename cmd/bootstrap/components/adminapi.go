package components

import (
	"market-admin/internal/infra/adminapi"
	"market-admin/internal/pkg/config"
	"market-admin/internal/usecase/commands"
	"market-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var AdminAPIModule = fx.Module("adminapi",
	fx.Provide(
		fx.Annotate(
			adminapi.NewBookingsAPI,
			fx.As(new(commands.BookingStatusAPI)),
			fx.As(new(queries.BookingReader)),
		),
		fx.Annotate(
			adminapi.NewSubscriptionsAPI,
			fx.As(new(commands.SubscriptionWriter)),
			fx.As(new(queries.SubscriptionReader)),
		),
		fx.Annotate(
			adminapi.NewLocationsAPI,
			fx.As(new(commands.CountryWriter)),
			fx.As(new(queries.LocationReader)),
		),
		fx.Annotate(
			NewBannersAPI,
			fx.As(new(commands.BannerWriter)),
			fx.As(new(queries.BannerReader)),
		),
		fx.Annotate(
			adminapi.NewStatsAPI,
			fx.As(new(queries.StatsReader)),
		),
		fx.Annotate(
			adminapi.NewAuthAPI,
			fx.As(new(commands.AuthGateway)),
		),
	),
)

func NewBannersAPI(client adminapi.Requester, cfg config.Config) *adminapi.BannersAPI {
	return adminapi.NewBannersAPI(client, cfg.API.PublicURL)
}
