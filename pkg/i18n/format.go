package i18n

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var currencySymbols = map[string]string{
	"ILS": "₪",
	"USD": "$",
	"EUR": "€",
}

// FormatNumber renders v with locale grouping ("4,999").
func FormatNumber(v float64, l Locale) string {
	p := message.NewPrinter(l.Tag())
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatPrice renders a price amount with grouping and the currency
// symbol, whole shekels/dollars only ("₪4,999"). Unknown currency
// codes fall back to the code itself ("GBP 4,999").
func FormatPrice(amount float64, currency string, l Locale) string {
	p := message.NewPrinter(l.Tag())
	n := p.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
	if sym, ok := currencySymbols[currency]; ok {
		return sym + n
	}
	if currency == "" {
		return n
	}
	return currency + " " + n
}

// FormatDiscount renders a whole discount percentage ("9%").
func FormatDiscount(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}

var monthNames = map[Locale][12]string{
	Hebrew: {
		"ינואר", "פברואר", "מרץ", "אפריל", "מאי", "יוני",
		"יולי", "אוגוסט", "ספטמבר", "אוקטובר", "נובמבר", "דצמבר",
	},
	English: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

// FormatDate renders a calendar date the way the site displays it:
// "2 בינואר 2006" in Hebrew, "January 2, 2006" in English.
func FormatDate(t time.Time, l Locale) string {
	months, ok := monthNames[l]
	if !ok {
		months = monthNames[DefaultLocale]
		l = DefaultLocale
	}
	month := months[t.Month()-1]
	if l == English {
		return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
	}
	return fmt.Sprintf("%d ב%s %d", t.Day(), month, t.Year())
}

type timeUnit struct {
	seconds  int64
	en, enPl string
	he, hePl string
}

// Ordered largest first; the first unit that fits wins.
var timeUnits = []timeUnit{
	{31536000, "year", "years", "שנה", "שנים"},
	{2592000, "month", "months", "חודש", "חודשים"},
	{604800, "week", "weeks", "שבוע", "שבועות"},
	{86400, "day", "days", "יום", "ימים"},
	{3600, "hour", "hours", "שעה", "שעות"},
	{60, "minute", "minutes", "דקה", "דקות"},
}

// FormatRelativeTime renders the distance between now and t
// ("3 days ago", "לפני 3 ימים"). Future timestamps render as
// "in 3 days" / "בעוד 3 ימים"; anything under a minute is
// "just now" / "ממש עכשיו".
func FormatRelativeTime(t, now time.Time, l Locale) string {
	diff := now.Unix() - t.Unix()
	future := diff < 0
	if future {
		diff = -diff
	}

	for _, u := range timeUnits {
		if diff < u.seconds {
			continue
		}
		n := diff / u.seconds
		return relativePhrase(n, u, future, l)
	}

	if l == English {
		return "just now"
	}
	return "ממש עכשיו"
}

func relativePhrase(n int64, u timeUnit, future bool, l Locale) string {
	if l == English {
		unit := u.enPl
		if n == 1 {
			unit = u.en
		}
		if future {
			return fmt.Sprintf("in %d %s", n, unit)
		}
		return fmt.Sprintf("%d %s ago", n, unit)
	}

	prefix := "לפני"
	if future {
		prefix = "בעוד"
	}
	if n == 1 {
		return fmt.Sprintf("%s %s", prefix, u.he)
	}
	return fmt.Sprintf("%s %d %s", prefix, n, u.hePl)
}

// FormatRating renders "4.5 out of 5" / "4.5 מתוך 5". Ratings are
// clamped for display, never rejected.
func FormatRating(rating float64, maxRating int, l Locale) string {
	if math.IsNaN(rating) {
		rating = 0
	}
	p := message.NewPrinter(l.Tag())
	v := p.Sprint(number.Decimal(rating,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	if l == English {
		return fmt.Sprintf("%s out of %d", v, maxRating)
	}
	return fmt.Sprintf("%s מתוך %d", v, maxRating)
}

var availabilityLabels = map[string]LocalizedString{
	"in-stock":     {He: "במלאי", En: "In Stock"},
	"available":    {He: "זמין", En: "Available"},
	"limited":      {He: "מלאי מוגבל", En: "Limited Stock"},
	"out-of-stock": {He: "אזל מהמלאי", En: "Out of Stock"},
	"pre-order":    {He: "בהזמנה מוקדמת", En: "Pre-order"},
}

// FormatAvailability translates an availability status value.
// Unknown statuses pass through untranslated.
func FormatAvailability(status string, l Locale) string {
	if s, ok := availabilityLabels[status]; ok {
		return s.Get(l)
	}
	return status
}
