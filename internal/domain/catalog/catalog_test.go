//go:build unit

package catalog_test

import (
	"testing"

	"market-admin/internal/domain/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubscription() catalog.SubscriptionForm {
	return catalog.SubscriptionForm{
		Name:         "Gold",
		MonthlyPrice: 2500,
		YearlyPrice:  25000,
		Features:     "Unlimited listings",
		PaymentLink:  "https://pay.example/gold",
	}
}

func TestSubscriptionForm(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*catalog.SubscriptionForm)
		missing []string
	}{
		{name: "complete form", mutate: func(*catalog.SubscriptionForm) {}},
		{name: "blank name", mutate: func(f *catalog.SubscriptionForm) { f.Name = "  " }, missing: []string{"name"}},
		{name: "zero prices", mutate: func(f *catalog.SubscriptionForm) {
			f.MonthlyPrice = 0
			f.YearlyPrice = 0
		}, missing: []string{"monthly_price", "yearly_price"}},
		{name: "everything blank", mutate: func(f *catalog.SubscriptionForm) { *f = catalog.SubscriptionForm{} },
			missing: []string{"name", "monthly_price", "yearly_price", "features", "payment_link"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validSubscription()
			tt.mutate(&form)

			err := form.Validate()
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}
			var fieldErr *catalog.FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.ErrorIs(t, err, catalog.ErrRequiredFields)
			if diff := cmp.Diff(tt.missing, fieldErr.Fields); diff != "" {
				t.Errorf("missing fields (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCountryForm(t *testing.T) {
	form := catalog.CountryForm{Name: "Kenya", Flag: "KE", DialCode: "+254", Currency: "KES", ShortName: "KE"}
	assert.NoError(t, form.Validate())

	form.DialCode = ""
	form.ShortName = "\t"
	var fieldErr *catalog.FieldError
	require.ErrorAs(t, form.Validate(), &fieldErr)
	assert.Equal(t, []string{"dial_code", "short_name"}, fieldErr.Fields)
	assert.Contains(t, fieldErr.Error(), "dial_code, short_name")
}
