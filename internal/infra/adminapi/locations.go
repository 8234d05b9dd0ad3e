package adminapi

import (
	"context"
	"net/http"

	"market-admin/internal/infra/apiclient"
	"market-admin/internal/usecase/readmodel"
)

var locationRoots = []string{"/countries", "/locations", "/states", "/cities"}

type LocationsAPI struct {
	client Requester
}

func NewLocationsAPI(client Requester) *LocationsAPI {
	return &LocationsAPI{client: client}
}

func (a *LocationsAPI) ListLocations(ctx context.Context, limit, offset int) (*readmodel.PlacePage, error) {
	return a.listPlaces(ctx, "/locations", limit, offset)
}

func (a *LocationsAPI) ListStates(ctx context.Context, limit, offset int) (*readmodel.PlacePage, error) {
	return a.listPlaces(ctx, "/states", limit, offset)
}

func (a *LocationsAPI) ListCities(ctx context.Context, limit, offset int) (*readmodel.PlacePage, error) {
	return a.listPlaces(ctx, "/cities", limit, offset)
}

func (a *LocationsAPI) ListCountries(ctx context.Context, limit, offset int) (*readmodel.CountryPage, error) {
	var out readmodel.CountryPage
	err := a.client.Do(ctx, http.MethodGet, "/countries", apiclient.RequestOptions{Params: pageParams(limit, offset)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *LocationsAPI) CreateCountry(ctx context.Context, country readmodel.Country) (*readmodel.MutationResult, error) {
	return a.mutate(ctx, http.MethodPost, "/country/create", country)
}

func (a *LocationsAPI) UpdateCountry(ctx context.Context, id int64, country readmodel.Country) (*readmodel.MutationResult, error) {
	return a.mutate(ctx, http.MethodPut, idPath("/country/update/", id), country)
}

func (a *LocationsAPI) DeleteCountry(ctx context.Context, id int64) (*readmodel.MutationResult, error) {
	return a.mutate(ctx, http.MethodDelete, idPath("/country/delete/", id), nil)
}

func (a *LocationsAPI) listPlaces(ctx context.Context, path string, limit, offset int) (*readmodel.PlacePage, error) {
	var out readmodel.PlacePage
	err := a.client.Do(ctx, http.MethodGet, path, apiclient.RequestOptions{Params: pageParams(limit, offset)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *LocationsAPI) mutate(ctx context.Context, method, path string, body any) (*readmodel.MutationResult, error) {
	var out readmodel.MutationResult
	err := a.client.Do(ctx, method, path, apiclient.RequestOptions{Body: body, Invalidate: locationRoots}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
