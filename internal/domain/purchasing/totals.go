package purchasing

// Totals are the derived amounts of a purchase order
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	VATAmount  float64 `json:"vat_amount"`
	GrandTotal float64 `json:"grand_total"`
}

// ComputeTotals sums qty*unitPrice over items in order, applies vatRate as a
// percentage of the subtotal and adds otherCosts. Only Qty and UnitPrice of
// each item are read. Nothing is validated: negative values are summed as
// given and NaN or infinite inputs propagate into the results.
func ComputeTotals(items []LineItem, vatRate, otherCosts float64) Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Qty * item.UnitPrice
	}
	vatAmount := subtotal * (vatRate / 100)
	return Totals{
		Subtotal:   subtotal,
		VATAmount:  vatAmount,
		GrandTotal: subtotal + vatAmount + otherCosts,
	}
}
