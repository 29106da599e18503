package purchasing

import (
	"fmt"
	"strings"

	"github.com/pobuilder/backend/internal/domain/shared"
	"github.com/pobuilder/backend/internal/domain/shared/valueobject"
)

// FieldKind describes what sort of value a field holds
type FieldKind int

const (
	KindUnknown FieldKind = iota
	KindText
	KindNumber
	KindCurrency
)

// String returns the kind name used in error messages
func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindCurrency:
		return "currency"
	default:
		return "unknown"
	}
}

// OrderField names an editable header field of a purchase order
type OrderField string

const (
	FieldPONumber     OrderField = "po_number"
	FieldDate         OrderField = "date"
	FieldDeliveryDate OrderField = "delivery_date"
	FieldSupplier     OrderField = "supplier"
	FieldBuyer        OrderField = "buyer"
	FieldCurrency     OrderField = "currency"
	FieldVATRate      OrderField = "vat_rate"
	FieldOtherCosts   OrderField = "other_costs"
	FieldTerms        OrderField = "terms"
)

// Kind returns the value kind of the field, KindUnknown if it is not a field
func (f OrderField) Kind() FieldKind {
	switch f {
	case FieldPONumber, FieldDate, FieldDeliveryDate, FieldSupplier, FieldBuyer, FieldTerms:
		return KindText
	case FieldVATRate, FieldOtherCosts:
		return KindNumber
	case FieldCurrency:
		return KindCurrency
	}
	return KindUnknown
}

// ParseOrderField validates a field name coming from a client
func ParseOrderField(s string) (OrderField, error) {
	f := OrderField(strings.TrimSpace(s))
	if f.Kind() == KindUnknown {
		return "", shared.NewDomainError(shared.CodeInvalidField, fmt.Sprintf("unknown order field %q", s))
	}
	return f, nil
}

// ItemField names an editable column of a line item. The id is not editable.
type ItemField string

const (
	ItemFieldName      ItemField = "name"
	ItemFieldSpec      ItemField = "spec"
	ItemFieldQty       ItemField = "qty"
	ItemFieldUnitPrice ItemField = "unit_price"
	ItemFieldRemarks   ItemField = "remarks"
)

// Kind returns the value kind of the field, KindUnknown if it is not a field
func (f ItemField) Kind() FieldKind {
	switch f {
	case ItemFieldName, ItemFieldSpec, ItemFieldRemarks:
		return KindText
	case ItemFieldQty, ItemFieldUnitPrice:
		return KindNumber
	}
	return KindUnknown
}

// ParseItemField validates an item field name coming from a client
func ParseItemField(s string) (ItemField, error) {
	f := ItemField(strings.TrimSpace(s))
	if f.Kind() == KindUnknown {
		return "", shared.NewDomainError(shared.CodeInvalidField, fmt.Sprintf("unknown item field %q", s))
	}
	return f, nil
}

// Value is the new content of a field in an edit event.
// Build one with TextValue, NumberValue or CurrencyValue.
type Value struct {
	kind     FieldKind
	text     string
	number   float64
	currency valueobject.CurrencyCode
}

// TextValue wraps free text
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// NumberValue wraps a number. NaN and infinities are accepted as is.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, number: n}
}

// CurrencyValue wraps a catalog currency code
func CurrencyValue(code valueobject.CurrencyCode) Value {
	return Value{kind: KindCurrency, currency: code}
}

// Kind returns the kind of the wrapped value
func (v Value) Kind() FieldKind {
	return v.kind
}

func (v Value) expect(kind FieldKind, field string) error {
	if kind == KindUnknown {
		return shared.NewDomainError(shared.CodeInvalidField, fmt.Sprintf("unknown field %q", field))
	}
	if v.kind != kind {
		return shared.NewDomainError(shared.CodeInvalidInput,
			fmt.Sprintf("field %q expects a %s value, got %s", field, kind, v.kind))
	}
	if kind == KindCurrency && !v.currency.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidCurrency,
			fmt.Sprintf("unsupported currency %q", string(v.currency)))
	}
	return nil
}
