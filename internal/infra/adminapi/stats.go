package adminapi

import (
	"context"
	"net/http"
	"net/url"

	"market-admin/internal/infra/apiclient"
	"market-admin/internal/usecase/readmodel"
)

type StatsAPI struct {
	client Requester
}

func NewStatsAPI(client Requester) *StatsAPI {
	return &StatsAPI{client: client}
}

func (a *StatsAPI) OrderGraph(ctx context.Context, startDate string) (readmodel.GraphSeries, error) {
	return getGraph(ctx, a.client, "/orders/graph", startDate)
}

func (a *StatsAPI) SalesGraph(ctx context.Context, startDate string) (readmodel.GraphSeries, error) {
	return getGraph(ctx, a.client, "/stats/graph", startDate)
}

func (a *StatsAPI) Stats(ctx context.Context, startDate string) (*readmodel.StatsResult, error) {
	params := url.Values{}
	if startDate != "" {
		params.Set("start_date", startDate)
	}
	var out readmodel.StatsResult
	if err := a.client.Do(ctx, http.MethodGet, "/stats", apiclient.RequestOptions{Params: params}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
