package readmodel

import "errors"

type Subscription struct {
	ID           int64   `json:"id,omitempty"`
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
	YearlyPrice  float64 `json:"yearly_price"`
	Features     string  `json:"features"`
	PaymentLink  string  `json:"payment_link,omitempty"`
	// some endpoints name the link payment_link_url
	PaymentLinkURL string `json:"payment_link_url,omitempty"`
}

func (s Subscription) Link() string {
	if s.PaymentLink != "" {
		return s.PaymentLink
	}
	return s.PaymentLinkURL
}

type SubscriptionList struct {
	Envelope
	Data []Subscription `json:"data"`
}

type Subscriber struct {
	ID           int64         `json:"id"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Vendor       *UserRef      `json:"vendor"`
	Subscription *Subscription `json:"subscription"`
	Shop         *ShopRef      `json:"shop"`
	Status       string        `json:"status"`
}

type SubscriberList struct {
	Envelope
	Data []Subscriber `json:"data"`
}

func (l *SubscriberList) Validate() error {
	if err := l.Envelope.Validate(); err != nil {
		return err
	}
	for _, s := range l.Data {
		if s.EndDate == "" {
			return errors.New("subscriber without end_date")
		}
	}
	return nil
}

type Country struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Flag      string `json:"flag"`
	DialCode  string `json:"dial_code"`
	Currency  string `json:"currency"`
	ShortName string `json:"short_name"`
}

type CountryPage struct {
	Envelope
	Data  []Country `json:"data"`
	Total int       `json:"total"`
}

// Place covers locations, states and cities; unused keys stay zero.
type Place struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StateID   int64  `json:"state_id,omitempty"`
	CountryID int64  `json:"country_id,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type PlacePage struct {
	Envelope
	Data  []Place `json:"data"`
	Total int     `json:"total"`
}

type BannerType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

type BannerTypePage struct {
	Envelope
	Data  []BannerType `json:"data"`
	Total int          `json:"total"`
}

type BannerByType struct {
	Envelope
	Data struct {
		Banner string `json:"banner"`
	} `json:"data"`
}

// BannerUpload is the multipart form of banner create/update.
type BannerUpload struct {
	BannerTypeID int64
	Link         string
	FileName     string
	Image        []byte
}
