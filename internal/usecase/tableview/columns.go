package tableview

import (
	"strconv"
	"strings"
	"time"

	"market-admin/internal/pkg/patch"
	"market-admin/internal/usecase/readmodel"
)

const (
	SubscriptionCurrency = "KES"
	DefaultCurrency      = "GBP"
)

func SubscriptionColumns() []Column[readmodel.Subscription] {
	return []Column[readmodel.Subscription]{
		{
			Key:    "name",
			Header: "Plan Name",
			Render: func(s readmodel.Subscription, _ time.Time) Cell { return Cell{Text: Or(s.Name, Dash)} },
			Less:   func(a, b readmodel.Subscription) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
		},
		{
			Key:    "monthly_price",
			Header: "Monthly Price",
			Render: func(s readmodel.Subscription, _ time.Time) Cell { return priceCell(s.MonthlyPrice) },
			Less: func(a, b readmodel.Subscription) bool { return a.MonthlyPrice < b.MonthlyPrice },
		},
		{
			Key:    "yearly_price",
			Header: "Yearly Price",
			Render: func(s readmodel.Subscription, _ time.Time) Cell { return priceCell(s.YearlyPrice) },
			Less: func(a, b readmodel.Subscription) bool { return a.YearlyPrice < b.YearlyPrice },
		},
		{
			Key:    "features",
			Header: "Features",
			Render: func(s readmodel.Subscription, _ time.Time) Cell {
				return Cell{Text: Or(Truncate(s.Features, TruncateLimit), Dash)}
			},
		},
		{
			Key:    "payment_link",
			Header: "Payment Link",
			Render: func(s readmodel.Subscription, _ time.Time) Cell {
				if link := s.Link(); link != "" {
					return Cell{Text: "Open Link", Link: link}
				}
				return Cell{Text: Dash}
			},
		},
	}
}

func SubscriberColumns() []Column[readmodel.Subscriber] {
	return []Column[readmodel.Subscriber]{
		{
			Key:    "shop",
			Header: "Shop",
			Render: func(s readmodel.Subscriber, _ time.Time) Cell {
				cell := Cell{Text: Dash}
				if s.Shop == nil {
					cell.Secondary = NotAvailable
					return cell
				}
				cell.Text = Or(s.Shop.Name, Dash)
				cell.Image = patch.Coalesce(s.Shop.Logo, "")
				if cell.Image == "" {
					cell.Secondary = NotAvailable
				}
				return cell
			},
		},
		{
			Key:    "vendor",
			Header: "Vendor",
			Render: func(s readmodel.Subscriber, _ time.Time) Cell {
				if s.Vendor == nil {
					return Cell{Text: Dash, Secondary: Dash}
				}
				return Cell{Text: Or(s.Vendor.Name, Dash), Secondary: Or(s.Vendor.Email, Dash)}
			},
			Less: func(a, b readmodel.Subscriber) bool { return vendorName(a.Vendor) < vendorName(b.Vendor) },
		},
		{
			Key:    "plan",
			Header: "Subscription Plan",
			Render: func(s readmodel.Subscriber, _ time.Time) Cell {
				if s.Subscription == nil {
					return Cell{Text: Dash, Secondary: "Monthly: " + FormatNumber(0, DefaultCurrency)}
				}
				return Cell{
					Text:      Or(s.Subscription.Name, Dash),
					Secondary: "Monthly: " + FormatNumber(s.Subscription.MonthlyPrice, DefaultCurrency),
				}
			},
		},
		{
			Key:    "status",
			Header: "Status",
			Render: func(s readmodel.Subscriber, now time.Time) Cell {
				end, err := ParseTimestamp(s.EndDate)
				if err != nil {
					return Cell{Text: NotAvailable}
				}
				return Cell{Badge: ActivityBadge(Remaining(end, now))}
			},
			Less: func(a, b readmodel.Subscriber) bool { return timeOf(a.EndDate).Before(timeOf(b.EndDate)) },
		},
		{
			Key:    "started_on",
			Header: "Started On",
			Render: func(s readmodel.Subscriber, _ time.Time) Cell { return Cell{Text: HumanDate(s.StartDate)} },
			Less:   func(a, b readmodel.Subscriber) bool { return timeOf(a.StartDate).Before(timeOf(b.StartDate)) },
		},
	}
}

func BookingColumns() []Column[readmodel.Booking] {
	return []Column[readmodel.Booking]{
		{
			Key:    "id",
			Header: "Booking",
			Render: func(b readmodel.Booking, _ time.Time) Cell { return Cell{Text: "#" + strconv.FormatInt(b.ID, 10)} },
			Less:   func(a, b readmodel.Booking) bool { return a.ID < b.ID },
		},
		{
			Key:    "service",
			Header: "Service",
			Render: func(b readmodel.Booking, _ time.Time) Cell {
				if b.Service == nil {
					return Cell{Text: Dash}
				}
				return Cell{Text: Or(b.Service.Title, Dash), Image: b.Service.Image}
			},
		},
		{
			Key:    "customer",
			Header: "Customer",
			Render: func(b readmodel.Booking, _ time.Time) Cell {
				if b.Customer == nil {
					return Cell{Text: NotAvailable}
				}
				return Cell{Text: Or(b.Customer.Name, NotAvailable), Secondary: Or(b.Customer.Email, Dash)}
			},
		},
		{
			Key:    "vendor",
			Header: "Vendor",
			Render: func(b readmodel.Booking, _ time.Time) Cell {
				if b.Vendor == nil {
					return Cell{Text: NotAvailable}
				}
				return Cell{Text: Or(b.Vendor.Name, NotAvailable)}
			},
		},
		{
			Key:    "shop",
			Header: "Shop",
			Render: func(b readmodel.Booking, _ time.Time) Cell {
				if b.Shop == nil {
					return Cell{Text: Dash}
				}
				return Cell{Text: Or(b.Shop.Name, Dash), Image: patch.Coalesce(b.Shop.Logo, "")}
			},
		},
		{
			Key:    "amount",
			Header: "Amount",
			Render: func(b readmodel.Booking, _ time.Time) Cell { return Cell{Text: FormatAmount(b.Amount, DefaultCurrency)} },
			Less:   func(a, b readmodel.Booking) bool { return amountOf(a.Amount) < amountOf(b.Amount) },
		},
		{
			Key:    "delivery_status",
			Header: "Delivery",
			Render: func(b readmodel.Booking, _ time.Time) Cell { return Cell{Badge: statusBadge(b.DeliveryStatus)} },
		},
		{
			Key:    "payment_status",
			Header: "Payment",
			Render: func(b readmodel.Booking, _ time.Time) Cell { return Cell{Badge: statusBadge(b.PaymentStatus)} },
		},
		{
			Key:    "start_date",
			Header: "Start",
			Render: func(b readmodel.Booking, _ time.Time) Cell { return Cell{Text: HumanDate(b.StartDate)} },
			Less:   func(a, b readmodel.Booking) bool { return timeOf(a.StartDate).Before(timeOf(b.StartDate)) },
		},
		{
			Key:    "end_date",
			Header: "End",
			Render: func(b readmodel.Booking, _ time.Time) Cell { return Cell{Text: HumanDate(b.EndDate)} },
			Less:   func(a, b readmodel.Booking) bool { return timeOf(a.EndDate).Before(timeOf(b.EndDate)) },
		},
	}
}

func CountryColumns() []Column[readmodel.Country] {
	text := func(get func(readmodel.Country) string) func(readmodel.Country, time.Time) Cell {
		return func(c readmodel.Country, _ time.Time) Cell { return Cell{Text: Or(get(c), Dash)} }
	}
	return []Column[readmodel.Country]{
		{
			Key:    "name",
			Header: "Name",
			Render: text(func(c readmodel.Country) string { return c.Name }),
			Less:   func(a, b readmodel.Country) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
		},
		{Key: "flag", Header: "Flag", Render: text(func(c readmodel.Country) string { return c.Flag })},
		{
			Key:    "dial_code",
			Header: "Dial Code",
			Render: text(func(c readmodel.Country) string { return c.DialCode }),
			Less:   func(a, b readmodel.Country) bool { return a.DialCode < b.DialCode },
		},
		{Key: "currency", Header: "Currency", Render: text(func(c readmodel.Country) string { return c.Currency })},
		{Key: "short_name", Header: "Short Name", Render: text(func(c readmodel.Country) string { return c.ShortName })},
	}
}

func priceCell(v float64) Cell {
	if v == 0 {
		return Cell{Text: SubscriptionCurrency + " " + Dash}
	}
	return Cell{Text: FormatNumber(v, SubscriptionCurrency)}
}

var statusTones = map[string]Tone{
	"processing": ToneInfo,
	"pending":    ToneWarning,
	"ongoing":    ToneInfo,
	"delivered":  ToneSuccess,
	"completed":  ToneSuccess,
	"returned":   ToneMuted,
	"refunded":   ToneMuted,
	"cancelled":  ToneDanger,
}

func statusBadge(status string) *Badge {
	if status == "" {
		return &Badge{Label: NotAvailable, Tone: ToneMuted}
	}
	tone, ok := statusTones[status]
	if !ok {
		tone = ToneMuted
	}
	return &Badge{Label: strings.ToUpper(status[:1]) + status[1:], Tone: tone}
}

func vendorName(v *readmodel.UserRef) string {
	if v == nil {
		return ""
	}
	return strings.ToLower(v.Name)
}

// unparseable dates sort first
func timeOf(s string) time.Time {
	t, _ := ParseTimestamp(s)
	return t
}

func amountOf(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
