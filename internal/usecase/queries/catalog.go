package queries

import (
	"context"

	"market-admin/internal/pkg/clock"
	"market-admin/internal/usecase/readmodel"
	"market-admin/internal/usecase/tableview"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

type CatalogQueries interface {
	SubscriptionTable(ctx context.Context, q TableQuery) (*tableview.Table, error)
	SubscriberTable(ctx context.Context, q TableQuery) (*tableview.Table, error)
	CountryTable(ctx context.Context, q TableQuery) (*tableview.Table, error)
	Places(ctx context.Context, kind PlaceKind, q TableQuery) (*readmodel.PlacePage, error)
}

type PlaceKind string

const (
	PlaceLocations PlaceKind = "locations"
	PlaceStates    PlaceKind = "states"
	PlaceCities    PlaceKind = "cities"
)

type catalogQueriesImpl struct {
	subscriptions SubscriptionReader
	locations     LocationReader
	clock         clock.Clock
}

func NewCatalogQueries(subscriptions SubscriptionReader, locations LocationReader, clk clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{
		subscriptions: subscriptions,
		locations:     locations,
		clock:         clk,
	}
}

func (c *catalogQueriesImpl) SubscriptionTable(ctx context.Context, q TableQuery) (*tableview.Table, error) {
	res, err := c.subscriptions.List(ctx)
	if err != nil {
		return nil, err
	}
	table := tableview.BuildLocal(res.Data, tableview.SubscriptionColumns(), q.pagination(), q.Sort, c.clock.Now())
	return &table, nil
}

func (c *catalogQueriesImpl) SubscriberTable(ctx context.Context, q TableQuery) (*tableview.Table, error) {
	res, err := c.subscriptions.ListSubscribers(ctx)
	if err != nil {
		return nil, err
	}
	table := tableview.BuildLocal(res.Data, tableview.SubscriberColumns(), q.pagination(), q.Sort, c.clock.Now())
	return &table, nil
}

func (c *catalogQueriesImpl) CountryTable(ctx context.Context, q TableQuery) (*tableview.Table, error) {
	page := q.pagination()
	res, err := c.locations.ListCountries(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	table := tableview.Build(res.Data, tableview.CountryColumns(), page.WithTotal(res.Total), q.Sort, c.clock.Now())
	return &table, nil
}

func (c *catalogQueriesImpl) Places(ctx context.Context, kind PlaceKind, q TableQuery) (*readmodel.PlacePage, error) {
	page := q.pagination()
	switch kind {
	case PlaceStates:
		return c.locations.ListStates(ctx, page.PageSize, page.Offset())
	case PlaceCities:
		return c.locations.ListCities(ctx, page.PageSize, page.Offset())
	default:
		return c.locations.ListLocations(ctx, page.PageSize, page.Offset())
	}
}
