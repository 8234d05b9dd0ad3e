package adminapi

import (
	"context"
	"net/http"

	"market-admin/internal/infra/apiclient"
	"market-admin/internal/usecase/readmodel"
)

type SubscriptionsAPI struct {
	client Requester
}

func NewSubscriptionsAPI(client Requester) *SubscriptionsAPI {
	return &SubscriptionsAPI{client: client}
}

func (a *SubscriptionsAPI) List(ctx context.Context) (*readmodel.SubscriptionList, error) {
	var out readmodel.SubscriptionList
	if err := a.client.Do(ctx, http.MethodGet, "/subscriptions", apiclient.RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SubscriptionsAPI) ListSubscribers(ctx context.Context) (*readmodel.SubscriberList, error) {
	var out readmodel.SubscriberList
	if err := a.client.Do(ctx, http.MethodGet, "/subscriptions/subscribers", apiclient.RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SubscriptionsAPI) Create(ctx context.Context, sub readmodel.Subscription) (*readmodel.MutationResult, error) {
	return a.mutate(ctx, http.MethodPost, "/subscriptions", sub)
}

func (a *SubscriptionsAPI) Update(ctx context.Context, id int64, sub readmodel.Subscription) (*readmodel.MutationResult, error) {
	return a.mutate(ctx, http.MethodPut, idPath("/subscriptions/", id), sub)
}

func (a *SubscriptionsAPI) Delete(ctx context.Context, id int64) (*readmodel.MutationResult, error) {
	return a.mutate(ctx, http.MethodDelete, idPath("/subscriptions/", id), nil)
}

func (a *SubscriptionsAPI) mutate(ctx context.Context, method, path string, body any) (*readmodel.MutationResult, error) {
	var out readmodel.MutationResult
	if err := a.client.Do(ctx, method, path, apiclient.RequestOptions{Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
