package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"market-admin/internal/handler/api"
	"market-admin/internal/handler/httperr"
	"market-admin/internal/handler/middleware"
	"market-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted under /api.
type Handlers struct {
	Auth      *api.AuthHandler
	Booking   *api.BookingHandler
	Catalog   *api.CatalogHandler
	Banner    *api.BannerHandler
	Dashboard *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, guard *middleware.GuardMiddleware, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, guard, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, guard *middleware.GuardMiddleware, h Handlers) {
	noStore := []gin.HandlerFunc{middleware.NoStore()}

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Pages are served by the UI; unknown paths still go through the guard so a
	// browser without a session is redirected instead of seeing a 404.
	engine.NoRoute(guard.RequireSession(), notFound)

	apiGroup := engine.Group("/api")
	apiGroup.Use(guard.RequireSession())
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: noStore},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodPost, Path: "/forget-password", Handler: h.Auth.ForgetPassword},
			{Method: http.MethodPost, Path: "/change-password", Handler: h.Auth.ChangePassword, Mw: noStore},
			{Method: http.MethodGet, Path: "/route-check", Handler: h.Auth.RouteCheck},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/export", Handler: h.Booking.Export, Mw: noStore},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Booking.Stats},
			{Method: http.MethodGet, Path: "/graph", Handler: h.Booking.Graph},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodDelete, Path: "/:id/view", Handler: h.Booking.Release},
			{Method: http.MethodPut, Path: "/:id/status", Handler: h.Booking.ChangeStatus},
			{Method: http.MethodPut, Path: "/:id/payment-status", Handler: h.Booking.ChangePaymentStatus},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/orders/graph", Handler: h.Dashboard.OrderGraph},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Dashboard.Stats},
			{Method: http.MethodGet, Path: "/stats/graph", Handler: h.Dashboard.SalesGraph},
		})

		addRoutes(apiGroup.Group("/subscriptions"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListSubscriptions},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateSubscription},
			{Method: http.MethodGet, Path: "/subscribers", Handler: h.Catalog.ListSubscribers},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateSubscription},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteSubscription},
		})

		addRoutes(apiGroup.Group("/countries"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListCountries},
			{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateCountry},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateCountry},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteCountry},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/places/:kind", Handler: h.Catalog.ListPlaces},
		})

		addRoutes(apiGroup.Group("/banners"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Banner.Create},
			{Method: http.MethodGet, Path: "/by-type/:type", Handler: h.Dashboard.BannerByType},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Banner.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Banner.Delete},
		})

		addRoutes(apiGroup.Group("/banner-types"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Dashboard.BannerTypes},
			{Method: http.MethodPost, Path: "", Handler: h.Banner.CreateType},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Banner.DeleteType},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func notFound(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusNotFound, nil, "Not found", nil)
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
