package commands

import (
	"context"
	"strings"

	"market-admin/internal/pkg/errs"
	"market-admin/internal/usecase/readmodel"
)

//go:generate mockgen -source=banner.go -destination=../../../tests/mock/commands/banner.go -package=commandsmock

type BannerCommands interface {
	Create(ctx context.Context, upload readmodel.BannerUpload) (*readmodel.MutationResult, error)
	Update(ctx context.Context, id int64, upload readmodel.BannerUpload) (*readmodel.MutationResult, error)
	Delete(ctx context.Context, id int64) (*readmodel.MutationResult, error)
	CreateType(ctx context.Context, name string) (*readmodel.MutationResult, error)
	DeleteType(ctx context.Context, id int64) (*readmodel.MutationResult, error)
}

type bannerCommandsImpl struct {
	banners BannerWriter
}

func NewBannerCommands(banners BannerWriter) BannerCommands {
	return &bannerCommandsImpl{banners: banners}
}

func (b *bannerCommandsImpl) Create(ctx context.Context, upload readmodel.BannerUpload) (*readmodel.MutationResult, error) {
	if err := validateUpload(upload, true); err != nil {
		return nil, err
	}
	return confirmed(b.banners.Create(ctx, upload))
}

// Update keeps the stored image when no new file is sent.
func (b *bannerCommandsImpl) Update(ctx context.Context, id int64, upload readmodel.BannerUpload) (*readmodel.MutationResult, error) {
	if err := validateUpload(upload, false); err != nil {
		return nil, err
	}
	return confirmed(b.banners.Update(ctx, id, upload))
}

func (b *bannerCommandsImpl) Delete(ctx context.Context, id int64) (*readmodel.MutationResult, error) {
	return confirmed(b.banners.Delete(ctx, id))
}

func (b *bannerCommandsImpl) CreateType(ctx context.Context, name string) (*readmodel.MutationResult, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.Mark(errs.New("banner type name is required"), errs.ErrValidation)
	}
	return confirmed(b.banners.CreateType(ctx, strings.TrimSpace(name)))
}

func (b *bannerCommandsImpl) DeleteType(ctx context.Context, id int64) (*readmodel.MutationResult, error) {
	return confirmed(b.banners.DeleteType(ctx, id))
}

func validateUpload(upload readmodel.BannerUpload, requireImage bool) error {
	var missing []string
	if upload.BannerTypeID <= 0 {
		missing = append(missing, "banner_type_id")
	}
	if requireImage && len(upload.Image) == 0 {
		missing = append(missing, "image")
	}
	if len(missing) > 0 {
		return errs.Mark(errs.Newf("missing fields: %s", strings.Join(missing, ", ")), errs.ErrValidation)
	}
	return nil
}
