package valueobject

import (
	"fmt"
	"strings"

	"github.com/pobuilder/backend/internal/domain/shared"
	"golang.org/x/text/language"
)

// CurrencyCode identifies one of the currencies a purchase order can be
// denominated in. The set is closed: only the constants below are valid.
type CurrencyCode string

const (
	USD CurrencyCode = "USD" // US Dollar (default)
	KRW CurrencyCode = "KRW" // South Korean Won
	EUR CurrencyCode = "EUR" // Euro
	JPY CurrencyCode = "JPY" // Japanese Yen
	CNY CurrencyCode = "CNY" // Chinese Yuan
)

// DefaultCurrency is the currency new purchase orders start in
const DefaultCurrency = USD

// catalogOrder is the display order of the currency picker
var catalogOrder = [...]CurrencyCode{USD, KRW, EUR, JPY, CNY}

// Currency is a catalog entry. It is immutable and fully determined by its code.
type Currency struct {
	Code   CurrencyCode `json:"code"`
	Symbol string       `json:"symbol"`
	Locale string       `json:"locale"`
}

// Lookup returns the catalog entry for code. Every CurrencyCode constant has an
// entry; passing a value outside the catalog is a programming error and panics.
// Untrusted input must go through ParseCurrencyCode first.
func Lookup(code CurrencyCode) Currency {
	switch code {
	case USD:
		return Currency{Code: USD, Symbol: "$", Locale: "en-US"}
	case KRW:
		return Currency{Code: KRW, Symbol: "₩", Locale: "ko-KR"}
	case EUR:
		return Currency{Code: EUR, Symbol: "€", Locale: "de-DE"}
	case JPY:
		return Currency{Code: JPY, Symbol: "¥", Locale: "ja-JP"}
	case CNY:
		return Currency{Code: CNY, Symbol: "¥", Locale: "zh-CN"}
	}
	panic(fmt.Sprintf("valueobject: currency %q is not in the catalog", string(code)))
}

// ParseCurrencyCode converts text into a catalog code.
// Surrounding whitespace and letter case are ignored.
func ParseCurrencyCode(s string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !code.IsValid() {
		return "", shared.NewDomainError(shared.CodeInvalidCurrency,
			fmt.Sprintf("unsupported currency %q", s))
	}
	return code, nil
}

// Currencies returns the whole catalog in display order
func Currencies() []Currency {
	out := make([]Currency, 0, len(catalogOrder))
	for _, code := range catalogOrder {
		out = append(out, Lookup(code))
	}
	return out
}

// IsValid reports whether the code belongs to the catalog
func (c CurrencyCode) IsValid() bool {
	switch c {
	case USD, KRW, EUR, JPY, CNY:
		return true
	}
	return false
}

// String returns the ISO 4217 code
func (c CurrencyCode) String() string {
	return string(c)
}

// FractionDigits is the number of decimal places amounts are displayed with.
// Won and yen are shown without a fractional part.
func (c CurrencyCode) FractionDigits() int {
	switch c {
	case KRW, JPY:
		return 0
	}
	return 2
}

// Tag returns the BCP 47 language tag of the currency's display locale
func (c Currency) Tag() language.Tag {
	return language.MustParse(c.Locale)
}
