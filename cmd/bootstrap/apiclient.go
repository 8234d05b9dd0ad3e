package bootstrap

import (
	"context"
	"log/slog"
	"net/http"

	"market-admin/internal/infra/adminapi"
	"market-admin/internal/infra/apiclient"
	"market-admin/internal/pkg/clock"
	"market-admin/internal/pkg/config"
	"market-admin/internal/pkg/errs"

	"go.uber.org/fx"
)

var APIClientModule = fx.Module("apiclient",
	fx.Provide(
		clock.NewRealClock,
		NewCache,
		NewAPIClient,
		fx.Annotate(
			func(c *apiclient.Client) *apiclient.Client { return c },
			fx.As(new(adminapi.Requester)),
		),
	),
)

// NewCache selects the response cache store by CACHE_DRIVER.
func NewCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (apiclient.Cache, error) {
	switch cfg.Cache.Driver {
	case "", "memory":
		return apiclient.NewMemoryCache(clk), nil
	case "redis":
		client, err := apiclient.NewRedisClient(cfg.Cache.RedisURL)
		if err != nil {
			return nil, err
		}
		cache := apiclient.NewRedisCache(client, cfg.Cache.Prefix, clk)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errs.Wrap(err, "redis cache unreachable")
				}
				logger.Info("response cache connected", "driver", "redis")
				return nil
			},
			OnStop: func(_ context.Context) error {
				return cache.Close()
			},
		})
		return cache, nil
	default:
		return nil, errs.Newf("unknown CACHE_DRIVER %q", cfg.Cache.Driver)
	}
}

func NewAPIClient(cfg config.Config, cache apiclient.Cache, clk clock.Clock, logger *slog.Logger) *apiclient.Client {
	return apiclient.New(apiclient.Options{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		Cache:      cache,
		Clock:      clk,
		DefaultTTL: cfg.Cache.TTL,
		Logger:     logger,
	})
}
