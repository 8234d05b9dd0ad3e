package adminapi

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"market-admin/internal/infra/apiclient"
	"market-admin/internal/pkg/errs"
	"market-admin/internal/usecase/readmodel"
)

var bannerRoots = []string{"/banners", "/banner", "/banner-types"}

type BannersAPI struct {
	client    Requester
	publicURL string
	roots     []string
}

// NewBannersAPI reads banners by type from publicURL. Admin writes also drop those
// public reads, which are cached under their absolute URL.
func NewBannersAPI(client Requester, publicURL string) *BannersAPI {
	publicURL = strings.TrimRight(publicURL, "/")
	roots := bannerRoots
	if publicURL != "" {
		roots = append(slices.Clone(bannerRoots), publicURL+"/banner")
	}
	return &BannersAPI{client: client, publicURL: publicURL, roots: roots}
}

func (a *BannersAPI) Create(ctx context.Context, upload readmodel.BannerUpload) (*readmodel.MutationResult, error) {
	body, err := bannerForm(upload)
	if err != nil {
		return nil, err
	}
	return a.mutate(ctx, http.MethodPost, "/banners/create", body)
}

func (a *BannersAPI) Update(ctx context.Context, id int64, upload readmodel.BannerUpload) (*readmodel.MutationResult, error) {
	body, err := bannerForm(upload)
	if err != nil {
		return nil, err
	}
	return a.mutate(ctx, http.MethodPut, idPath("/banners/", id)+"/update", body)
}

func (a *BannersAPI) Delete(ctx context.Context, id int64) (*readmodel.MutationResult, error) {
	return a.mutate(ctx, http.MethodDelete, idPath("/banners/", id)+"/delete", nil)
}

func (a *BannersAPI) ListTypes(ctx context.Context, limit, offset int) (*readmodel.BannerTypePage, error) {
	var out readmodel.BannerTypePage
	err := a.client.Do(ctx, http.MethodGet, "/banner-types", apiclient.RequestOptions{Params: pageParams(limit, offset)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BannersAPI) CreateType(ctx context.Context, name string) (*readmodel.MutationResult, error) {
	body, err := formBody(map[string]string{"name": name}, nil)
	if err != nil {
		return nil, err
	}
	return a.mutate(ctx, http.MethodPost, "/banner/type/create", body)
}

func (a *BannersAPI) DeleteType(ctx context.Context, id int64) (*readmodel.MutationResult, error) {
	return a.mutate(ctx, http.MethodDelete, idPath("/banner/type/", id)+"/delete", nil)
}

// ByType reads the public storefront API, not the admin one.
func (a *BannersAPI) ByType(ctx context.Context, bannerType string) (*readmodel.BannerByType, error) {
	var out readmodel.BannerByType
	target := a.publicURL + "/banner/" + url.PathEscape(bannerType)
	if err := a.client.Do(ctx, http.MethodGet, target, apiclient.RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BannersAPI) mutate(ctx context.Context, method, path string, body any) (*readmodel.MutationResult, error) {
	var out readmodel.MutationResult
	err := a.client.Do(ctx, method, path, apiclient.RequestOptions{Body: body, Invalidate: a.roots}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type formFile struct {
	field    string
	fileName string
	data     []byte
}

func bannerForm(upload readmodel.BannerUpload) (any, error) {
	fields := map[string]string{}
	if upload.BannerTypeID > 0 {
		fields["banner_type_id"] = strconv.FormatInt(upload.BannerTypeID, 10)
	}
	if upload.Link != "" {
		fields["link"] = upload.Link
	}
	var file *formFile
	if len(upload.Image) > 0 {
		file = &formFile{field: "image", fileName: upload.FileName, data: upload.Image}
	}
	return formBody(fields, file)
}

func formBody(fields map[string]string, file *formFile) (apiclient.RawBody, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return apiclient.RawBody{}, errs.Wrap(err, "write form field")
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(file.field, file.fileName)
		if err != nil {
			return apiclient.RawBody{}, errs.Wrap(err, "create form file")
		}
		if _, err := part.Write(file.data); err != nil {
			return apiclient.RawBody{}, errs.Wrap(err, "write form file")
		}
	}
	if err := w.Close(); err != nil {
		return apiclient.RawBody{}, errs.Wrap(err, "close form")
	}
	return apiclient.RawBody{ContentType: w.FormDataContentType(), Data: buf.Bytes()}, nil
}
