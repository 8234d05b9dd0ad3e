package request

import "market-admin/internal/domain/catalog"

// Required fields are checked by the domain forms so the response can name every missing one.
type SubscriptionRequest struct {
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
	YearlyPrice  float64 `json:"yearly_price"`
	Features     string  `json:"features"`
	PaymentLink  string  `json:"payment_link"`
}

func (r SubscriptionRequest) ToForm() catalog.SubscriptionForm {
	return catalog.SubscriptionForm{
		Name:         r.Name,
		MonthlyPrice: r.MonthlyPrice,
		YearlyPrice:  r.YearlyPrice,
		Features:     r.Features,
		PaymentLink:  r.PaymentLink,
	}
}

type CountryRequest struct {
	Name      string `json:"name"`
	Flag      string `json:"flag"`
	DialCode  string `json:"dial_code"`
	Currency  string `json:"currency"`
	ShortName string `json:"short_name"`
}

func (r CountryRequest) ToForm() catalog.CountryForm {
	return catalog.CountryForm{
		Name:      r.Name,
		Flag:      r.Flag,
		DialCode:  r.DialCode,
		Currency:  r.Currency,
		ShortName: r.ShortName,
	}
}

type BannerTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

// BannerForm is the multipart form of banner create/update; the image arrives as file "image".
type BannerForm struct {
	BannerTypeID int64  `form:"banner_type_id"`
	Link         string `form:"link"`
}
