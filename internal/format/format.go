// Package format renders money, percentages and time labels the way the
// customer sees them: US dollars with thousands grouping and two decimals.
package format

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// compactUnits are the suffixes used by Compact, smallest first.
var compactUnits = []string{"", "K", "M", "B", "T"}

// Currency formats d as "$8,452.18" or "-$1,294.33".
func Currency(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + dollars(d.Neg())
	}
	return dollars(d)
}

// Signed formats d with an explicit sign: "+$3,240.00", "-$62.39".
// Zero is shown as positive.
func Signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + dollars(d.Neg())
	}
	return "+" + dollars(d)
}

// Compact formats d with at most one fraction digit and a magnitude
// suffix: "$8.5K", "$21.4K", "$999", "$1.2M".
func Compact(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	unit := 0
	for unit < len(compactUnits)-1 && d.GreaterThanOrEqual(thousand) {
		d = d.Div(thousand)
		unit++
	}
	d = d.Round(1)
	// 999.95K rounds to 1000.0K; carry into the next unit.
	if unit < len(compactUnits)-1 && d.GreaterThanOrEqual(thousand) {
		d = d.Div(thousand).Round(1)
		unit++
	}

	return sign + "$" + d.String() + compactUnits[unit]
}

// Percent formats a percentage value rounded to a whole number: "78%".
func Percent(value decimal.Decimal) string {
	return value.Round(0).String() + "%"
}

// TimeLabel returns the activity timestamp label for t: "Today • 3:04 PM".
func TimeLabel(t time.Time) string {
	return "Today • " + t.Format("3:04 PM")
}

// DateLabel returns the header date for t: "Monday, Feb 9".
func DateLabel(t time.Time) string {
	return t.Format("Monday, Jan 2")
}

func dollars(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	w, err := decimal.NewFromString(whole)
	if err != nil || !w.IsInteger() {
		return "$" + fixed
	}
	return "$" + humanize.Comma(w.IntPart()) + "." + frac
}

// Greeting returns the salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
