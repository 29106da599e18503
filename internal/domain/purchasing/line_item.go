package purchasing

// LineItem is one row of a purchase order.
// ID is assigned once when the item is created and never changes.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Spec      string  `json:"spec"`
	Qty       float64 `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	Remarks   string  `json:"remarks"`
}

// NewLineItem returns an empty item with a fresh id
func NewLineItem(id string) LineItem {
	return LineItem{ID: id}
}

// LineTotal is qty * unitPrice. It is always derived, never stored.
func (i LineItem) LineTotal() float64 {
	return i.Qty * i.UnitPrice
}

// with returns a copy of the item with field set to v
func (i LineItem) with(field ItemField, v Value) (LineItem, error) {
	if err := v.expect(field.Kind(), string(field)); err != nil {
		return i, err
	}
	switch field {
	case ItemFieldName:
		i.Name = v.text
	case ItemFieldSpec:
		i.Spec = v.text
	case ItemFieldQty:
		i.Qty = v.number
	case ItemFieldUnitPrice:
		i.UnitPrice = v.number
	case ItemFieldRemarks:
		i.Remarks = v.text
	}
	return i, nil
}
