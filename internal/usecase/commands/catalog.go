package commands

import (
	"context"

	"market-admin/internal/domain/catalog"
	"market-admin/internal/pkg/errs"
	"market-admin/internal/usecase/readmodel"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog.go -package=commandsmock

var ErrRejected = errs.New("request rejected by admin api")

type CatalogCommands interface {
	CreateSubscription(ctx context.Context, form catalog.SubscriptionForm) (*readmodel.MutationResult, error)
	UpdateSubscription(ctx context.Context, id int64, form catalog.SubscriptionForm) (*readmodel.MutationResult, error)
	DeleteSubscription(ctx context.Context, id int64) (*readmodel.MutationResult, error)
	CreateCountry(ctx context.Context, form catalog.CountryForm) (*readmodel.MutationResult, error)
	UpdateCountry(ctx context.Context, id int64, form catalog.CountryForm) (*readmodel.MutationResult, error)
	DeleteCountry(ctx context.Context, id int64) (*readmodel.MutationResult, error)
}

type catalogCommandsImpl struct {
	subscriptions SubscriptionWriter
	countries     CountryWriter
}

func NewCatalogCommands(subscriptions SubscriptionWriter, countries CountryWriter) CatalogCommands {
	return &catalogCommandsImpl{
		subscriptions: subscriptions,
		countries:     countries,
	}
}

func (c *catalogCommandsImpl) CreateSubscription(ctx context.Context, form catalog.SubscriptionForm) (*readmodel.MutationResult, error) {
	if err := form.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return confirmed(c.subscriptions.Create(ctx, subscriptionFrom(form)))
}

func (c *catalogCommandsImpl) UpdateSubscription(ctx context.Context, id int64, form catalog.SubscriptionForm) (*readmodel.MutationResult, error) {
	if err := form.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return confirmed(c.subscriptions.Update(ctx, id, subscriptionFrom(form)))
}

func (c *catalogCommandsImpl) DeleteSubscription(ctx context.Context, id int64) (*readmodel.MutationResult, error) {
	return confirmed(c.subscriptions.Delete(ctx, id))
}

func (c *catalogCommandsImpl) CreateCountry(ctx context.Context, form catalog.CountryForm) (*readmodel.MutationResult, error) {
	if err := form.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return confirmed(c.countries.CreateCountry(ctx, countryFrom(form)))
}

func (c *catalogCommandsImpl) UpdateCountry(ctx context.Context, id int64, form catalog.CountryForm) (*readmodel.MutationResult, error) {
	if err := form.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return confirmed(c.countries.UpdateCountry(ctx, id, countryFrom(form)))
}

func (c *catalogCommandsImpl) DeleteCountry(ctx context.Context, id int64) (*readmodel.MutationResult, error) {
	return confirmed(c.countries.DeleteCountry(ctx, id))
}

func subscriptionFrom(f catalog.SubscriptionForm) readmodel.Subscription {
	return readmodel.Subscription{
		Name:         f.Name,
		MonthlyPrice: f.MonthlyPrice,
		YearlyPrice:  f.YearlyPrice,
		Features:     f.Features,
		PaymentLink:  f.PaymentLink,
	}
}

func countryFrom(f catalog.CountryForm) readmodel.Country {
	return readmodel.Country{
		Name:      f.Name,
		Flag:      f.Flag,
		DialCode:  f.DialCode,
		Currency:  f.Currency,
		ShortName: f.ShortName,
	}
}

// confirmed turns a non-success envelope into ErrRejected carrying the backend message.
func confirmed(res *readmodel.MutationResult, err error) (*readmodel.MutationResult, error) {
	if err != nil {
		return nil, err
	}
	if !res.Succeeded() {
		return res, errs.Mark(errs.New(res.Message), ErrRejected)
	}
	return res, nil
}
