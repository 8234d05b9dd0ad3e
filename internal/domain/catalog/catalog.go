package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrRequiredFields = errors.New("all fields are required")

// FieldError lists the blank required fields of a rejected form.
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequiredFields.Error(), strings.Join(e.Fields, ", "))
}

func (e *FieldError) Unwrap() error {
	return ErrRequiredFields
}

type requirement struct {
	field   string
	present bool
}

func check(reqs ...requirement) error {
	var missing []string
	for _, r := range reqs {
		if !r.present {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return &FieldError{Fields: missing}
	}
	return nil
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

// SubscriptionForm is a plan as composed in the dashboard before submission.
type SubscriptionForm struct {
	Name         string
	MonthlyPrice float64
	YearlyPrice  float64
	Features     string
	PaymentLink  string
}

// Validate rejects blank fields and zero prices before anything reaches the backend.
func (f SubscriptionForm) Validate() error {
	return check(
		requirement{"name", filled(f.Name)},
		requirement{"monthly_price", f.MonthlyPrice != 0},
		requirement{"yearly_price", f.YearlyPrice != 0},
		requirement{"features", filled(f.Features)},
		requirement{"payment_link", filled(f.PaymentLink)},
	)
}

type CountryForm struct {
	Name      string
	Flag      string
	DialCode  string
	Currency  string
	ShortName string
}

func (f CountryForm) Validate() error {
	return check(
		requirement{"name", filled(f.Name)},
		requirement{"flag", filled(f.Flag)},
		requirement{"dial_code", filled(f.DialCode)},
		requirement{"currency", filled(f.Currency)},
		requirement{"short_name", filled(f.ShortName)},
	)
}
