package purchasing

import (
	"time"

	"github.com/pobuilder/backend/internal/domain/shared/valueobject"
)

// DateLayout is the format order dates are entered in
const DateLayout = "2006-01-02"

// DefaultOrder is the example order every new editing session starts from.
// Its date is now's calendar day in UTC.
func DefaultOrder(now time.Time) PurchaseOrder {
	items := make([]LineItem, 0, 3)
	for _, seed := range []LineItem{
		{
			Name:      "Industrial Control Unit",
			Spec:      "Model: ICU-500\nInput: 24V DC\nOutput: 8x Relay",
			Qty:       5,
			UnitPrice: 450.00,
			Remarks:   "Warranty: 2 Years",
		},
		{
			Name:      "Sensor Module",
			Spec:      "Type: Optical\nRange: 0-100mm",
			Qty:       20,
			UnitPrice: 25.50,
		},
		{
			Name:      "Wiring Harness",
			Spec:      "Length: 2m\nConnector: 12-pin waterproof",
			Qty:       10,
			UnitPrice: 12.00,
			Remarks:   "Include spare pins",
		},
	} {
		seed.ID = NewItemID(items)
		items = append(items, seed)
	}

	return PurchaseOrder{
		PONumber:     "PO-2024-1001",
		Date:         now.UTC().Format(DateLayout),
		DeliveryDate: "",
		Supplier:     "TechComponents Ltd.\n123 Silicon Valley Blvd\nSan Jose, CA 95134\nUSA",
		Buyer:        "Global Solutions Inc.\n456 Innovation Drive\nSeoul, 06234\nSouth Korea",
		Currency:     valueobject.DefaultCurrency,
		Items:        items,
		VATRate:      10,
		OtherCosts:   0,
		Terms: "1. Payment: T/T 30 days after B/L date.\n" +
			"2. Incoterms: CIF Incheon.\n" +
			"3. Partial shipment allowed.\n" +
			"4. Country of Origin: USA",
	}
}
