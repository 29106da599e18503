package purchasing

import (
	"fmt"

	"github.com/pobuilder/backend/internal/domain/shared"
	"github.com/pobuilder/backend/internal/domain/shared/valueobject"
)

// PurchaseOrder is the document being edited.
//
// Values of this type are treated as immutable snapshots: every transition
// below returns a new PurchaseOrder with its own Items slice and leaves the
// receiver untouched, so a snapshot handed to a reader never changes under it.
// Dates are kept exactly as entered (normally YYYY-MM-DD); an empty
// DeliveryDate means none was requested.
type PurchaseOrder struct {
	PONumber     string                   `json:"po_number"`
	Date         string                   `json:"date"`
	DeliveryDate string                   `json:"delivery_date"`
	Supplier     string                   `json:"supplier"`
	Buyer        string                   `json:"buyer"`
	Currency     valueobject.CurrencyCode `json:"currency"`
	Items        []LineItem               `json:"items"`
	VATRate      float64                  `json:"vat_rate"`
	OtherCosts   float64                  `json:"other_costs"`
	Terms        string                   `json:"terms"`
}

// Clone returns a copy that shares no mutable state with o
func (o PurchaseOrder) Clone() PurchaseOrder {
	items := make([]LineItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// Totals computes subtotal, VAT and grand total for the current items
func (o PurchaseOrder) Totals() Totals {
	return ComputeTotals(o.Items, o.VATRate, o.OtherCosts)
}

// CurrencyInfo returns the catalog entry of the order currency
func (o PurchaseOrder) CurrencyInfo() valueobject.Currency {
	return valueobject.Lookup(o.Currency)
}

// Item returns the line item with the given id
func (o PurchaseOrder) Item(id string) (LineItem, bool) {
	i := indexOf(o.Items, id)
	if i < 0 {
		return LineItem{}, false
	}
	return o.Items[i], true
}

// Apply returns a copy of o with field set to v.
// Fields of other kinds are untouched.
func (o PurchaseOrder) Apply(field OrderField, v Value) (PurchaseOrder, error) {
	if err := v.expect(field.Kind(), string(field)); err != nil {
		return o, err
	}
	next := o.Clone()
	switch field {
	case FieldPONumber:
		next.PONumber = v.text
	case FieldDate:
		next.Date = v.text
	case FieldDeliveryDate:
		next.DeliveryDate = v.text
	case FieldSupplier:
		next.Supplier = v.text
	case FieldBuyer:
		next.Buyer = v.text
	case FieldCurrency:
		next.Currency = v.currency
	case FieldVATRate:
		next.VATRate = v.number
	case FieldOtherCosts:
		next.OtherCosts = v.number
	case FieldTerms:
		next.Terms = v.text
	}
	return next, nil
}

// ApplyItem returns a copy of o where the item with the given id has field set
// to v. An unknown id yields ITEM_NOT_FOUND and o is returned unchanged.
func (o PurchaseOrder) ApplyItem(id string, field ItemField, v Value) (PurchaseOrder, error) {
	i := indexOf(o.Items, id)
	if i < 0 {
		return o, itemNotFound(id)
	}
	updated, err := o.Items[i].with(field, v)
	if err != nil {
		return o, err
	}
	next := o.Clone()
	next.Items[i] = updated
	return next, nil
}

// AddItem appends an empty line item (no texts, zero qty and price) with an id
// distinct from every existing item, and returns the new order and that item.
func (o PurchaseOrder) AddItem() (PurchaseOrder, LineItem) {
	item := NewLineItem(NewItemID(o.Items))
	next := o.Clone()
	next.Items = append(next.Items, item)
	return next, item
}

// RemoveItem returns a copy of o without the item with the given id. Removing
// the only remaining item must be confirmed; when c declines, o is returned
// unchanged together with CONFIRMATION_REQUIRED.
func (o PurchaseOrder) RemoveItem(id string, c Confirmer) (PurchaseOrder, error) {
	i := indexOf(o.Items, id)
	if i < 0 {
		return o, itemNotFound(id)
	}
	if len(o.Items) == 1 && !confirmed(c, PromptDeleteLastItem) {
		return o, shared.NewDomainError(shared.CodeConfirmationRequired, PromptDeleteLastItem)
	}
	items := make([]LineItem, 0, len(o.Items)-1)
	items = append(items, o.Items[:i]...)
	items = append(items, o.Items[i+1:]...)
	next := o
	next.Items = items
	return next, nil
}

// Reset clears the PO number, supplier, buyer, items, terms and delivery date.
// The order date, currency, VAT rate and other costs are kept. Reset always
// asks for confirmation; when c declines, o is returned unchanged together
// with CONFIRMATION_REQUIRED.
func (o PurchaseOrder) Reset(c Confirmer) (PurchaseOrder, error) {
	if !confirmed(c, PromptReset) {
		return o, shared.NewDomainError(shared.CodeConfirmationRequired, PromptReset)
	}
	next := o
	next.PONumber = ""
	next.Supplier = ""
	next.Buyer = ""
	next.Items = []LineItem{}
	next.Terms = ""
	next.DeliveryDate = ""
	return next, nil
}

func itemNotFound(id string) error {
	return shared.NewDomainError(shared.CodeItemNotFound, fmt.Sprintf("line item %q not found", id))
}
