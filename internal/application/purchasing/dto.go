package purchasing

import (
	"github.com/pobuilder/backend/internal/domain/purchasing"
	"github.com/pobuilder/backend/internal/domain/shared/valueobject"
)

// Placeholders shown on the document when a field is empty
const (
	PlaceholderPONumber = "________________"
	PlaceholderSupplier = "Enter supplier information..."
	PlaceholderBuyer    = "Enter buyer information..."
	PlaceholderTerms    = "No specific terms indicated."
	PlaceholderNoItems  = "No items listed. Add items from the editor."
)

// DocumentTitle is the heading of the printed order
const DocumentTitle = "PURCHASE ORDER"

// ApprovalRoles are the signature boxes at the foot of the document, in order
var ApprovalRoles = []string{"Approver", "Purchasing", "Inspection", "Stamp"}

// ========================================
// Request DTOs
// ========================================

// EditInput is a field edit as received from a client.
// Text is used by text and currency fields, Number by numeric fields.
type EditInput struct {
	Field  string
	Text   string
	Number float64
}

// QuoteLine is one line of a stateless quote
type QuoteLine struct {
	Qty       float64
	UnitPrice float64
}

// QuoteRequest asks for totals of caller-supplied lines
type QuoteRequest struct {
	Currency   string
	VATRate    float64
	OtherCosts float64
	Lines      []QuoteLine
}

// ========================================
// Response DTOs
// ========================================

// OrderView is what every editing operation returns: the snapshot after the
// operation, its totals and the document rendered from both.
type OrderView struct {
	SessionID string
	Order     purchasing.PurchaseOrder
	Totals    purchasing.Totals
	Document  DocumentView
}

// TotalsView carries raw totals and their formatted forms
type TotalsView struct {
	Currency  valueobject.Currency
	Totals    purchasing.Totals
	Formatted FormattedTotals
}

// FormattedTotals are amounts as printed, each prefixed with the currency symbol
type FormattedTotals struct {
	Subtotal   string `json:"subtotal"`
	VATLabel   string `json:"vat_label"`
	VATAmount  string `json:"vat_amount"`
	OtherCosts string `json:"other_costs"`
	GrandTotal string `json:"grand_total"`
}

// DocumentView is the printable order. Every value is display text.
type DocumentView struct {
	Title            string          `json:"title"`
	CurrencyBadge    string          `json:"currency_badge"`
	PONumber         string          `json:"po_number"`
	Date             string          `json:"date"`
	ShowDeliveryDate bool            `json:"show_delivery_date"`
	DeliveryDate     string          `json:"delivery_date,omitempty"`
	Supplier         string          `json:"supplier"`
	SupplierIsEmpty  bool            `json:"supplier_is_empty"`
	Buyer            string          `json:"buyer"`
	BuyerIsEmpty     bool            `json:"buyer_is_empty"`
	Rows             []DocumentRow   `json:"rows"`
	EmptyItemsNotice string          `json:"empty_items_notice,omitempty"`
	Terms            string          `json:"terms"`
	Totals           FormattedTotals `json:"totals"`
	ApprovalRoles    []string        `json:"approval_roles"`
}

// DocumentRow is one printed line item
type DocumentRow struct {
	No        int    `json:"no"`
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	Spec      string `json:"spec"`
	Qty       string `json:"qty"`
	UnitPrice string `json:"unit_price"`
	Amount    string `json:"amount"`
	Remarks   string `json:"remarks"`
}

// ========================================
// Mapping functions
// ========================================

// ToOrderView builds the view of a snapshot held by sessionID
func ToOrderView(sessionID string, order purchasing.PurchaseOrder) OrderView {
	totals := order.Totals()
	return OrderView{
		SessionID: sessionID,
		Order:     order.Clone(),
		Totals:    totals,
		Document:  ToDocumentView(order, totals),
	}
}

// ToDocumentView renders order for printing
func ToDocumentView(order purchasing.PurchaseOrder, totals purchasing.Totals) DocumentView {
	c := order.CurrencyInfo()

	doc := DocumentView{
		Title:            DocumentTitle,
		CurrencyBadge:    CurrencyBadge(c),
		PONumber:         orPlaceholder(order.PONumber, PlaceholderPONumber),
		Date:             order.Date,
		ShowDeliveryDate: order.DeliveryDate != "",
		DeliveryDate:     order.DeliveryDate,
		Supplier:         orPlaceholder(order.Supplier, PlaceholderSupplier),
		SupplierIsEmpty:  order.Supplier == "",
		Buyer:            orPlaceholder(order.Buyer, PlaceholderBuyer),
		BuyerIsEmpty:     order.Buyer == "",
		Rows:             make([]DocumentRow, 0, len(order.Items)),
		Terms:            orPlaceholder(order.Terms, PlaceholderTerms),
		Totals:           formatTotals(c.Code, order.VATRate, order.OtherCosts, totals),
		ApprovalRoles:    append([]string(nil), ApprovalRoles...),
	}

	for i, item := range order.Items {
		doc.Rows = append(doc.Rows, DocumentRow{
			No:        i + 1,
			ItemID:    item.ID,
			Name:      item.Name,
			Spec:      item.Spec,
			Qty:       purchasing.FormatQuantity(item.Qty, c.Code),
			UnitPrice: purchasing.FormatCurrency(item.UnitPrice, c.Code),
			Amount:    purchasing.FormatAmount(item.LineTotal(), c.Code),
			Remarks:   item.Remarks,
		})
	}
	if len(order.Items) == 0 {
		doc.EmptyItemsNotice = PlaceholderNoItems
	}

	return doc
}

// ToTotalsView formats totals computed in currency
func ToTotalsView(code valueobject.CurrencyCode, vatRate, otherCosts float64, totals purchasing.Totals) TotalsView {
	return TotalsView{
		Currency:  valueobject.Lookup(code),
		Totals:    totals,
		Formatted: formatTotals(code, vatRate, otherCosts, totals),
	}
}

// CurrencyBadge is the "USD ($) Currency" label in the document header
func CurrencyBadge(c valueobject.Currency) string {
	return string(c.Code) + " (" + c.Symbol + ") Currency"
}

func formatTotals(code valueobject.CurrencyCode, vatRate, otherCosts float64, totals purchasing.Totals) FormattedTotals {
	return FormattedTotals{
		Subtotal:   purchasing.FormatAmount(totals.Subtotal, code),
		VATLabel:   purchasing.FormatPercent(vatRate),
		VATAmount:  purchasing.FormatAmount(totals.VATAmount, code),
		OtherCosts: purchasing.FormatAmount(otherCosts, code),
		GrandTotal: purchasing.FormatAmount(totals.GrandTotal, code),
	}
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
