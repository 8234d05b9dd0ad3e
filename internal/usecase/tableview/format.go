package tableview

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	TruncateLimit = 60
	Ellipsis      = "..."
	Dash          = "—"
	NotAvailable  = "N/A"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Truncate cuts s to limit runes and appends Ellipsis. Shorter strings are returned as-is.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + Ellipsis
}

// Or returns s, or placeholder when s is blank.
func Or(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

type Activity struct {
	Active        bool
	RemainingDays int
}

// Remaining derives the active flag and whole days left until end, never negative.
func Remaining(end, now time.Time) Activity {
	days := math.Ceil(float64(end.Sub(now)) / float64(24*time.Hour))
	return Activity{
		Active:        !now.After(end),
		RemainingDays: int(math.Max(0, days)),
	}
}

func ActivityBadge(a Activity) *Badge {
	if !a.Active {
		return &Badge{Label: "Inactive", Tone: ToneMuted}
	}
	return &Badge{Label: "Active (" + strconv.Itoa(a.RemainingDays) + " days left)", Tone: ToneSuccess}
}

func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// HumanDate renders "Jan 2, 2006", or the placeholder for unparseable input.
func HumanDate(s string) string {
	t, err := ParseTimestamp(s)
	if err != nil {
		return Dash
	}
	return t.Format("Jan 2, 2006")
}

var amountPrinter = message.NewPrinter(language.BritishEnglish)

// FormatAmount renders a value with its ISO currency code and grouped two-decimal
// amount. Non-numeric input renders as zero; unknown codes fall back to GBP.
func FormatAmount(value string, code string) string {
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		unit = currency.GBP
	}
	return unit.String() + " " + amountPrinter.Sprintf("%.2f", amount)
}

func FormatNumber(value float64, code string) string {
	return FormatAmount(strconv.FormatFloat(value, 'f', -1, 64), code)
}
