package components

import (
	"market-admin/internal/handler"
	"market-admin/internal/handler/api"
	"market-admin/internal/handler/middleware"
	"market-admin/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		jwt.NewInspector,
		middleware.NewGuardMiddleware,
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewBannerHandler,
		api.NewDashboardHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	catalog *api.CatalogHandler,
	banner *api.BannerHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Booking:   booking,
		Catalog:   catalog,
		Banner:    banner,
		Dashboard: dashboard,
	}
}
