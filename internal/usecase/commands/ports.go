package commands

import (
	"context"

	"market-admin/internal/usecase/readmodel"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// BookingStatusAPI is the part of the bookings resource the lifecycle controller drives.
type BookingStatusAPI interface {
	Get(ctx context.Context, id int64) (*readmodel.BookingDetail, error)
	ChangeStatus(ctx context.Context, id int64, status string) (*readmodel.Envelope, error)
	ChangePaymentStatus(ctx context.Context, id int64, status string) (*readmodel.Envelope, error)
}

type SubscriptionWriter interface {
	Create(ctx context.Context, sub readmodel.Subscription) (*readmodel.MutationResult, error)
	Update(ctx context.Context, id int64, sub readmodel.Subscription) (*readmodel.MutationResult, error)
	Delete(ctx context.Context, id int64) (*readmodel.MutationResult, error)
}

type CountryWriter interface {
	CreateCountry(ctx context.Context, country readmodel.Country) (*readmodel.MutationResult, error)
	UpdateCountry(ctx context.Context, id int64, country readmodel.Country) (*readmodel.MutationResult, error)
	DeleteCountry(ctx context.Context, id int64) (*readmodel.MutationResult, error)
}

type BannerWriter interface {
	Create(ctx context.Context, upload readmodel.BannerUpload) (*readmodel.MutationResult, error)
	Update(ctx context.Context, id int64, upload readmodel.BannerUpload) (*readmodel.MutationResult, error)
	Delete(ctx context.Context, id int64) (*readmodel.MutationResult, error)
	CreateType(ctx context.Context, name string) (*readmodel.MutationResult, error)
	DeleteType(ctx context.Context, id int64) (*readmodel.MutationResult, error)
}

type AuthGateway interface {
	Login(ctx context.Context, creds readmodel.Credentials) (*readmodel.LoginResult, error)
	ForgetPassword(ctx context.Context, email string) (*readmodel.Envelope, error)
	ChangePassword(ctx context.Context, change readmodel.PasswordChange) (*readmodel.Envelope, error)
}
