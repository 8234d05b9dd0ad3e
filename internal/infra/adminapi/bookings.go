package adminapi

import (
	"context"
	"net/http"
	"net/url"

	"market-admin/internal/infra/apiclient"
	"market-admin/internal/usecase/readmodel"
)

// status writes touch every booking-derived read, including dashboard aggregates
var bookingRoots = []string{"/bookings", "/orders", "/stats"}

type BookingsAPI struct {
	client Requester
}

func NewBookingsAPI(client Requester) *BookingsAPI {
	return &BookingsAPI{client: client}
}

func (a *BookingsAPI) List(ctx context.Context, p readmodel.ListBookingsParams) (*readmodel.BookingPage, error) {
	params := pageParams(p.Limit, p.Offset)
	if p.Search != "" {
		params.Set("search", p.Search)
	}
	if p.Status != "" {
		params.Set("status", p.Status)
	}

	var out readmodel.BookingPage
	if err := a.client.Do(ctx, http.MethodGet, "/bookings", apiclient.RequestOptions{Params: params}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BookingsAPI) Get(ctx context.Context, id int64) (*readmodel.BookingDetail, error) {
	var out readmodel.BookingDetail
	if err := a.client.Do(ctx, http.MethodGet, idPath("/bookings/", id), apiclient.RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BookingsAPI) ChangeStatus(ctx context.Context, id int64, status string) (*readmodel.Envelope, error) {
	body := map[string]string{"status": status}
	return a.changeStatus(ctx, idPath("/booking/", id)+"/status", body)
}

func (a *BookingsAPI) ChangePaymentStatus(ctx context.Context, id int64, status string) (*readmodel.Envelope, error) {
	body := map[string]string{"payment_status": status}
	return a.changeStatus(ctx, idPath("/booking/", id)+"/payment-status", body)
}

func (a *BookingsAPI) Graph(ctx context.Context, startDate string) (readmodel.GraphSeries, error) {
	return getGraph(ctx, a.client, "/bookings/graph", startDate)
}

func (a *BookingsAPI) Stats(ctx context.Context) (*readmodel.OrderStats, error) {
	var out readmodel.OrderStats
	if err := a.client.Do(ctx, http.MethodGet, "/bookings/stats", apiclient.RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BookingsAPI) changeStatus(ctx context.Context, path string, body map[string]string) (*readmodel.Envelope, error) {
	var out readmodel.Envelope
	err := a.client.Do(ctx, http.MethodPut, path, apiclient.RequestOptions{Body: body, Invalidate: bookingRoots}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func getGraph(ctx context.Context, client Requester, path, startDate string) (readmodel.GraphSeries, error) {
	params := url.Values{}
	if startDate != "" {
		params.Set("start_date", startDate)
	}
	var out readmodel.GraphSeries
	if err := client.Do(ctx, http.MethodGet, path, apiclient.RequestOptions{Params: params}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
