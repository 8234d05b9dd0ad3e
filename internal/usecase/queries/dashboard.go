package queries

import (
	"context"
	"log/slog"

	"market-admin/internal/pkg/patch"
	"market-admin/internal/usecase/readmodel"
)

//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/queries/dashboard.go -package=queriesmock

type DashboardQueries interface {
	OrderGraph(ctx context.Context, startDate string) (readmodel.GraphSeries, error)
	SalesGraph(ctx context.Context, startDate string) (readmodel.GraphSeries, error)
	Stats(ctx context.Context, startDate string) (*readmodel.StatsResult, error)
	BannerTypes(ctx context.Context, q TableQuery) (*readmodel.BannerTypePage, error)
	BannerByType(ctx context.Context, bannerType string) (string, error)
}

type dashboardQueriesImpl struct {
	stats         StatsReader
	banners       BannerReader
	defaultBanner string
	logger        *slog.Logger
}

func NewDashboardQueries(stats StatsReader, banners BannerReader, defaultBanner string, logger *slog.Logger) DashboardQueries {
	return &dashboardQueriesImpl{
		stats:         stats,
		banners:       banners,
		defaultBanner: defaultBanner,
		logger:        logger,
	}
}

func (d *dashboardQueriesImpl) OrderGraph(ctx context.Context, startDate string) (readmodel.GraphSeries, error) {
	return d.stats.OrderGraph(ctx, startDate)
}

func (d *dashboardQueriesImpl) SalesGraph(ctx context.Context, startDate string) (readmodel.GraphSeries, error) {
	return d.stats.SalesGraph(ctx, startDate)
}

func (d *dashboardQueriesImpl) Stats(ctx context.Context, startDate string) (*readmodel.StatsResult, error) {
	return d.stats.Stats(ctx, startDate)
}

func (d *dashboardQueriesImpl) BannerTypes(ctx context.Context, q TableQuery) (*readmodel.BannerTypePage, error) {
	page := q.pagination()
	return d.banners.ListTypes(ctx, page.PageSize, page.Offset())
}

// BannerByType never fails: an unavailable banner falls back to the configured default.
func (d *dashboardQueriesImpl) BannerByType(ctx context.Context, bannerType string) (string, error) {
	res, err := d.banners.ByType(ctx, bannerType)
	if err != nil {
		d.logger.WarnContext(ctx, "banner fetch failed, using default", "type", bannerType, "error", err.Error())
		return d.defaultBanner, nil
	}
	return patch.CoalesceString(res.Data.Banner, d.defaultBanner), nil
}
