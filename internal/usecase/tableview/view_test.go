//go:build unit

package tableview_test

import (
	"strings"
	"testing"
	"time"

	"market-admin/internal/pkg/patch"
	"market-admin/internal/usecase/readmodel"
	"market-admin/internal/usecase/tableview"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestTruncate(t *testing.T) {
	t.Run("long feature text is cut to the limit", func(t *testing.T) {
		in := strings.Repeat("a", 100)
		out := tableview.Truncate(in, tableview.TruncateLimit)
		assert.Equal(t, strings.Repeat("a", 60)+"...", out)
	})

	t.Run("short feature text is unchanged", func(t *testing.T) {
		in := strings.Repeat("b", 40)
		assert.Equal(t, in, tableview.Truncate(in, tableview.TruncateLimit))
	})

	t.Run("exactly at the limit is unchanged", func(t *testing.T) {
		in := strings.Repeat("c", 60)
		assert.Equal(t, in, tableview.Truncate(in, tableview.TruncateLimit))
	})

	t.Run("counts runes rather than bytes", func(t *testing.T) {
		in := strings.Repeat("é", 61)
		assert.Equal(t, strings.Repeat("é", 60)+"...", tableview.Truncate(in, tableview.TruncateLimit))
	})
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name   string
		end    time.Time
		expect tableview.Activity
	}{
		{name: "ends tomorrow", end: fixedNow.Add(24 * time.Hour), expect: tableview.Activity{Active: true, RemainingDays: 1}},
		{name: "ended yesterday", end: fixedNow.Add(-24 * time.Hour), expect: tableview.Activity{Active: false, RemainingDays: 0}},
		{name: "ends right now", end: fixedNow, expect: tableview.Activity{Active: true, RemainingDays: 0}},
		{name: "partial day rounds up", end: fixedNow.Add(25 * time.Hour), expect: tableview.Activity{Active: true, RemainingDays: 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tableview.Remaining(tc.end, fixedNow))
		})
	}

	t.Run("badge text", func(t *testing.T) {
		active := tableview.ActivityBadge(tableview.Activity{Active: true, RemainingDays: 3})
		assert.Equal(t, "Active (3 days left)", active.Label)
		assert.Equal(t, tableview.ToneSuccess, active.Tone)

		inactive := tableview.ActivityBadge(tableview.Activity{})
		assert.Equal(t, "Inactive", inactive.Label)
	})
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "GBP 1,234.50", tableview.FormatAmount("1234.5", "GBP"))
	assert.Equal(t, "GBP 0.00", tableview.FormatAmount("not-a-number", "GBP"))
	assert.Equal(t, "GBP 10.00", tableview.FormatAmount("10", "???"))
	assert.Equal(t, "KES 2,500.00", tableview.FormatNumber(2500, "KES"))

	assert.Equal(t, "Mar 10, 2025", tableview.HumanDate("2025-03-10T08:00:00.000000Z"))
	assert.Equal(t, "Mar 10, 2025", tableview.HumanDate("2025-03-10"))
	assert.Equal(t, tableview.Dash, tableview.HumanDate("garbage"))
}

func TestPagination(t *testing.T) {
	p := tableview.NewPagination(2, 10, 45)
	assert.Equal(t, 20, p.Offset())
	assert.Equal(t, 5, p.PageCount())
	assert.True(t, p.HasNext())
	assert.True(t, p.HasPrevious())

	clamped := tableview.NewPagination(-1, 0, -3)
	assert.Equal(t, tableview.Pagination{PageIndex: 0, PageSize: tableview.DefaultPageSize, TotalRows: 0}, clamped)
	assert.Equal(t, 0, clamped.PageCount())
	assert.False(t, clamped.HasNext())

	assert.Equal(t, tableview.MaxPageSize, tableview.NewPagination(0, 10_000, 0).PageSize)
	assert.Equal(t, 7, p.WithTotal(7).TotalRows)
}

func TestBuild(t *testing.T) {
	subs := []readmodel.Subscription{
		{Name: "Gold", MonthlyPrice: 3000, YearlyPrice: 30000, Features: strings.Repeat("x", 100), PaymentLink: "https://pay/gold"},
		{Name: "basic", MonthlyPrice: 1000, Features: "Listing"},
		{Name: "Silver", MonthlyPrice: 2000, YearlyPrice: 20000, PaymentLinkURL: "https://pay/silver"},
	}
	original := append([]readmodel.Subscription(nil), subs...)
	page := tableview.NewPagination(0, 10, len(subs))

	t.Run("renders in input order without a sort key", func(t *testing.T) {
		table := tableview.Build(subs, tableview.SubscriptionColumns(), page, tableview.Sort{}, fixedNow)
		require.Len(t, table.Rows, 3)
		require.Len(t, table.Columns, 5)

		gold := table.Rows[0].Cells
		assert.Equal(t, "Gold", gold[0].Text)
		assert.Equal(t, "KES 3,000.00", gold[1].Text)
		assert.Equal(t, strings.Repeat("x", 60)+"...", gold[3].Text)
		assert.Equal(t, "https://pay/gold", gold[4].Link)

		basic := table.Rows[1].Cells
		assert.Equal(t, "KES —", basic[2].Text)
		assert.Equal(t, tableview.Dash, basic[4].Text)

		silver := table.Rows[2].Cells
		assert.Equal(t, tableview.Dash, silver[3].Text)
		assert.Equal(t, "https://pay/silver", silver[4].Link)
		assert.Equal(t, 1, table.PageCount)
	})

	t.Run("sorts a copy", func(t *testing.T) {
		table := tableview.Build(subs, tableview.SubscriptionColumns(), page, tableview.Sort{Key: "monthly_price", Desc: true}, fixedNow)
		names := []string{table.Rows[0].Cells[0].Text, table.Rows[1].Cells[0].Text, table.Rows[2].Cells[0].Text}
		assert.Equal(t, []string{"Gold", "Silver", "basic"}, names)
		assert.Equal(t, "desc", table.Columns[1].Sorted)
		if diff := cmp.Diff(original, subs); diff != "" {
			t.Errorf("entities mutated (-want +got):\n%s", diff)
		}
	})

	t.Run("unsortable key leaves order as-is", func(t *testing.T) {
		table := tableview.Build(subs, tableview.SubscriptionColumns(), page, tableview.Sort{Key: "features"}, fixedNow)
		assert.Equal(t, "Gold", table.Rows[0].Cells[0].Text)
		assert.False(t, table.Columns[3].Sortable)
	})

	t.Run("same input gives same table", func(t *testing.T) {
		a := tableview.Build(subs, tableview.SubscriptionColumns(), page, tableview.Sort{Key: "name"}, fixedNow)
		b := tableview.Build(subs, tableview.SubscriptionColumns(), page, tableview.Sort{Key: "name"}, fixedNow)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("non-deterministic build (-a +b):\n%s", diff)
		}
	})
}

func TestSubscriberColumns(t *testing.T) {
	rows := []readmodel.Subscriber{
		{
			StartDate:    "2025-01-01",
			EndDate:      fixedNow.Add(24 * time.Hour).Format(time.RFC3339),
			Vendor:       &readmodel.UserRef{Name: "Ada", Email: "ada@example.com"},
			Subscription: &readmodel.Subscription{Name: "Gold", MonthlyPrice: 30},
			Shop:         &readmodel.ShopRef{Name: "Ada's", Logo: patch.Ptr("https://cdn/logo.png")},
		},
		{
			StartDate: "2024-01-01",
			EndDate:   fixedNow.Add(-24 * time.Hour).Format(time.RFC3339),
		},
	}

	table := tableview.Build(rows, tableview.SubscriberColumns(), tableview.NewPagination(0, 10, 2), tableview.Sort{}, fixedNow)

	full := table.Rows[0].Cells
	assert.Equal(t, "https://cdn/logo.png", full[0].Image)
	assert.Equal(t, "Ada's", full[0].Text)
	assert.Equal(t, "ada@example.com", full[1].Secondary)
	assert.Equal(t, "Monthly: GBP 30.00", full[2].Secondary)
	require.NotNil(t, full[3].Badge)
	assert.Equal(t, "Active (1 days left)", full[3].Badge.Label)
	assert.Equal(t, "Jan 1, 2025", full[4].Text)

	empty := table.Rows[1].Cells
	assert.Equal(t, tableview.Dash, empty[0].Text)
	assert.Equal(t, tableview.NotAvailable, empty[0].Secondary)
	assert.Equal(t, tableview.Dash, empty[1].Text)
	assert.Equal(t, tableview.Dash, empty[2].Text)
	assert.Equal(t, "Inactive", empty[3].Badge.Label)
}

func TestBookingColumns(t *testing.T) {
	rows := []readmodel.Booking{
		{ID: 2, Amount: "99.5", DeliveryStatus: "processing", PaymentStatus: "pending", StartDate: "2025-03-01"},
		{ID: 1, Amount: "1500", DeliveryStatus: "delivered", PaymentStatus: "completed"},
	}
	table := tableview.Build(rows, tableview.BookingColumns(), tableview.NewPagination(0, 10, 2), tableview.Sort{Key: "id"}, fixedNow)

	first := table.Rows[0].Cells
	assert.Equal(t, "#1", first[0].Text)
	assert.Equal(t, "GBP 1,500.00", first[5].Text)
	assert.Equal(t, "Delivered", first[6].Badge.Label)
	assert.Equal(t, tableview.NotAvailable, first[2].Text)
	assert.Equal(t, tableview.Dash, first[8].Text)

	second := table.Rows[1].Cells
	assert.Equal(t, "Processing", second[6].Badge.Label)
	assert.Equal(t, "Pending", second[7].Badge.Label)
	assert.Equal(t, "Mar 1, 2025", second[8].Text)
	assert.Equal(t, "Pending / "+tableview.Dash, tableview.Cell{Badge: second[7].Badge, Secondary: tableview.Dash}.Plain())
}

func TestBuildLocal(t *testing.T) {
	countries := []readmodel.Country{
		{Name: "Kenya", DialCode: "+254"},
		{Name: "Ghana", DialCode: "+233"},
		{Name: "Nigeria", DialCode: "+234"},
	}

	table := tableview.BuildLocal(countries, tableview.CountryColumns(), tableview.NewPagination(1, 2, 0), tableview.Sort{Key: "name"}, fixedNow)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Nigeria", table.Rows[0].Cells[0].Text)
	assert.Equal(t, 3, table.Pagination.TotalRows)
	assert.Equal(t, 2, table.PageCount)

	beyond := tableview.BuildLocal(countries, tableview.CountryColumns(), tableview.NewPagination(5, 2, 0), tableview.Sort{}, fixedNow)
	assert.Empty(t, beyond.Rows)
}
