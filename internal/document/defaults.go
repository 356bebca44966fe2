package document

import (
	"time"

	"github.com/oklog/ulid/v2"

	"indiebyll/pkg/models"
)

// Canned defaults for a fresh document. An old save that predates a
// field gets the same value during migration at load time.
const (
	DefaultTaxRatePercent = 18
	DefaultCurrencyCode   = "INR"
	DefaultNotes          = "Payments are due upon receipt. Thank you for choosing " +
		"Blazing Render Creation Hub LLP for your creative and technical needs!"
)

// DefaultPaymentMethod is applied to new documents and to old saves
// that predate the payment-method selector.
const DefaultPaymentMethod = models.PayBoth

func defaultParty() models.PartyInfo {
	return models.PartyInfo{
		CompanyName:    "Blazing Render Creation Hub LLP",
		CompanyAddress: "Toranagallu, Ballari (dist.), Kanataka, India - 583123",
		CompanyEmail:   "info@blazingrender.com",
		CompanyPhone:   "+91 98765 43210",
		BrandColor:     "#4f46e5",
	}
}

func defaultPayment() models.PaymentInfo {
	return models.PaymentInfo{
		Method:                DefaultPaymentMethod,
		BankName:              "Your Bank Ltd.",
		AccountNumber:         "XXXXXXXX12345",
		RoutingCode:           "ABCD0001234",
		UPIHandle:             "youragency@upi",
		SignatoryName:         "Blazing Render Creation Hub LLP",
		IncludeSignatoryBlock: true,
	}
}

func defaultMeta(kind models.DocumentKind, number string, now time.Time) models.DocumentMeta {
	return models.DocumentMeta{
		Kind:           kind,
		DocumentNumber: number,
		IssueDate:      now.Format("2006-01-02"),
		ServiceType:    "Graphic Designing",
		Recurring:      true,
		Notes:          DefaultNotes,
		Annexure: models.Annexure{
			Rows: []models.AnnexureRow{{
				ID:     ulid.Make().String(),
				Date:   now.Format("2006-01-02"),
				Title:  "Diwali Sale Announcement",
				Status: "Completed",
			}},
		},
	}
}

// defaultItems is the single placeholder line a fresh document starts
// with.
func defaultItems() []models.LineItem {
	return []models.LineItem{{
		ID:          ulid.Make().String(),
		Description: "Social Media Creative Design (Monthly Retainer)",
		Quantity:    1,
		UnitPrice:   25000,
	}}
}

func defaultAdjustments() models.AdjustmentSet {
	return models.AdjustmentSet{TaxRatePercent: DefaultTaxRatePercent}
}
