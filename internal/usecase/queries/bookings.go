package queries

import (
	"context"

	"market-admin/internal/pkg/clock"
	"market-admin/internal/usecase/readmodel"
	"market-admin/internal/usecase/tableview"
)

//go:generate mockgen -source=bookings.go -destination=../../../tests/mock/queries/bookings.go -package=queriesmock

type BookingQueries interface {
	BookingTable(ctx context.Context, q TableQuery) (*tableview.Table, error)
	BookingStats(ctx context.Context) (*readmodel.OrderStats, error)
	BookingGraph(ctx context.Context, startDate string) (readmodel.GraphSeries, error)
}

type bookingQueriesImpl struct {
	reader BookingReader
	clock  clock.Clock
}

func NewBookingQueries(reader BookingReader, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{reader: reader, clock: clk}
}

// BookingTable pages on the server; sorting applies within the fetched page.
func (b *bookingQueriesImpl) BookingTable(ctx context.Context, q TableQuery) (*tableview.Table, error) {
	page := q.pagination()
	res, err := b.reader.List(ctx, readmodel.ListBookingsParams{
		Limit:  page.PageSize,
		Offset: page.Offset(),
		Search: q.Search,
		Status: q.Status,
	})
	if err != nil {
		return nil, err
	}
	table := tableview.Build(res.Data, tableview.BookingColumns(), page.WithTotal(res.Total), q.Sort, b.clock.Now())
	return &table, nil
}

func (b *bookingQueriesImpl) BookingStats(ctx context.Context) (*readmodel.OrderStats, error) {
	return b.reader.Stats(ctx)
}

func (b *bookingQueriesImpl) BookingGraph(ctx context.Context, startDate string) (readmodel.GraphSeries, error) {
	return b.reader.Graph(ctx, startDate)
}
