package calc

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NotAvailable is displayed in place of a non-finite number.
const NotAvailable = "N/A"

var printer = message.NewPrinter(language.English)

// Round rounds half away from zero to places decimals.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(int32(places)).Float64()
	return f
}

// FormatFixed renders v with exactly places decimals and no grouping.
func FormatFixed(v float64, places int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return decimal.NewFromFloat(v).StringFixed(int32(places))
}

// FormatNumber renders v with thousands separators and exactly places decimals.
func FormatNumber(v float64, places int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	r := Round(v, places)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return printer.Sprint(number.Decimal(r, number.Scale(places)))
}

// FormatCurrency renders a dollar amount such as $1,234.50.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	if Round(v, 2) < 0 {
		return "-$" + FormatNumber(-v, 2)
	}
	return "$" + FormatNumber(v, 2)
}

// FormatPercent renders v (already a percentage) with a trailing %.
func FormatPercent(v float64, places int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return FormatFixed(v, places) + "%"
}

// Fixed returns a FormatFixed display func for Num.
func Fixed(places int) func(float64) string {
	return func(v float64) string { return FormatFixed(v, places) }
}

// Grouped returns a FormatNumber display func for Num.
func Grouped(places int) func(float64) string {
	return func(v float64) string { return FormatNumber(v, places) }
}

// Percent returns a FormatPercent display func for Num.
func Percent(places int) func(float64) string {
	return func(v float64) string { return FormatPercent(v, places) }
}

// Currency is the FormatCurrency display func for Num.
func Currency(v float64) string {
	return FormatCurrency(v)
}
