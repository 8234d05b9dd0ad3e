package queries

import (
	"context"

	"market-admin/internal/usecase/readmodel"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports.go -package=queriesmock

type BookingReader interface {
	List(ctx context.Context, p readmodel.ListBookingsParams) (*readmodel.BookingPage, error)
	Graph(ctx context.Context, startDate string) (readmodel.GraphSeries, error)
	Stats(ctx context.Context) (*readmodel.OrderStats, error)
}

type SubscriptionReader interface {
	List(ctx context.Context) (*readmodel.SubscriptionList, error)
	ListSubscribers(ctx context.Context) (*readmodel.SubscriberList, error)
}

type LocationReader interface {
	ListLocations(ctx context.Context, limit, offset int) (*readmodel.PlacePage, error)
	ListStates(ctx context.Context, limit, offset int) (*readmodel.PlacePage, error)
	ListCities(ctx context.Context, limit, offset int) (*readmodel.PlacePage, error)
	ListCountries(ctx context.Context, limit, offset int) (*readmodel.CountryPage, error)
}

type BannerReader interface {
	ListTypes(ctx context.Context, limit, offset int) (*readmodel.BannerTypePage, error)
	ByType(ctx context.Context, bannerType string) (*readmodel.BannerByType, error)
}

type StatsReader interface {
	OrderGraph(ctx context.Context, startDate string) (readmodel.GraphSeries, error)
	SalesGraph(ctx context.Context, startDate string) (readmodel.GraphSeries, error)
	Stats(ctx context.Context, startDate string) (*readmodel.StatsResult, error)
}
