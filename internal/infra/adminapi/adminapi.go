// Package adminapi holds one thin accessor per admin API resource. Accessors fix paths
// and parameters, decode into readmodel contracts and return facade errors unchanged.
package adminapi

import (
	"context"
	"net/url"
	"strconv"

	"market-admin/internal/infra/apiclient"
)

// Requester is the subset of the facade the accessors use.
type Requester interface {
	Do(ctx context.Context, method, path string, opts apiclient.RequestOptions, out any) error
}

func pageParams(limit, offset int) url.Values {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	return params
}

func idPath(format string, id int64) string {
	return format + strconv.FormatInt(id, 10)
}
