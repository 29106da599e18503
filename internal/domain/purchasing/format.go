package purchasing

import (
	"math"
	"strconv"

	"github.com/pobuilder/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxQuantityDigits caps the fraction digits shown for quantities
const maxQuantityDigits = 3

// FormatCurrency renders amount with the grouping and decimal separators of the
// currency's locale and its fixed number of fraction digits. Halves round away
// from zero. No currency symbol is added.
func FormatCurrency(amount float64, code valueobject.CurrencyCode) string {
	c := valueobject.Lookup(code)
	if s, ok := nonFinite(amount); ok {
		return s
	}
	digits := code.FractionDigits()
	rounded := roundHalfAway(amount, digits)
	p := message.NewPrinter(c.Tag())
	return zeroSign(amount, rounded) + p.Sprint(number.Decimal(rounded, number.Scale(digits)))
}

// FormatQuantity renders a quantity in the currency's locale with up to three
// fraction digits and no trailing zeros.
func FormatQuantity(qty float64, code valueobject.CurrencyCode) string {
	c := valueobject.Lookup(code)
	if s, ok := nonFinite(qty); ok {
		return s
	}
	rounded := roundHalfAway(qty, maxQuantityDigits)
	p := message.NewPrinter(c.Tag())
	return zeroSign(qty, rounded) + p.Sprint(number.Decimal(rounded, number.MaxFractionDigits(maxQuantityDigits)))
}

// FormatAmount is FormatCurrency prefixed with the currency symbol and a space
func FormatAmount(amount float64, code valueobject.CurrencyCode) string {
	return valueobject.Lookup(code).Symbol + " " + FormatCurrency(amount, code)
}

// roundHalfAway always returns +0 for results that round to zero
func roundHalfAway(x float64, digits int) float64 {
	f, _ := decimal.NewFromFloat(x).Round(int32(digits)).Float64()
	if f == 0 {
		return 0
	}
	return f
}

// zeroSign keeps the minus of a negative input that rounded to zero, so
// -0.004 in USD reads "-0.00" as it does in the browser's number format.
func zeroSign(x, rounded float64) string {
	if rounded == 0 && math.Signbit(x) {
		return "-"
	}
	return ""
}

func nonFinite(x float64) (string, bool) {
	switch {
	case math.IsNaN(x):
		return "NaN", true
	case math.IsInf(x, 1):
		return "∞", true
	case math.IsInf(x, -1):
		return "-∞", true
	}
	return "", false
}

// FormatPercent renders a rate the way it is typed, followed by "%":
// shortest decimal form, no grouping, e.g. "10%", "7.5%".
func FormatPercent(rate float64) string {
	switch {
	case math.IsNaN(rate):
		return "NaN%"
	case math.IsInf(rate, 1):
		return "Infinity%"
	case math.IsInf(rate, -1):
		return "-Infinity%"
	}
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}
