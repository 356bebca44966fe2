package models

// DocumentKind distinguishes the two document families the generator
// produces. The kind decides the numbering prefix and a few defaults,
// nothing else.
type DocumentKind string

const (
	KindInvoice   DocumentKind = "invoice"
	KindQuotation DocumentKind = "quotation"
)

// NumberPrefix returns the document-number prefix for the kind
// (numbers follow the PREFIX-YEAR-NNN pattern).
func (k DocumentKind) NumberPrefix() string {
	if k == KindQuotation {
		return "QUO"
	}
	return "INV"
}

// LineItem is a single billable row. The line amount is always derived
// as Quantity * UnitPrice at read time and is never stored.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// PricingTier maps a quantity range to a per-unit rate. A nil MaxQty
// means the range is unbounded above. Tiers are not validated for
// disjointness; lookup resolves overlaps by lowest MinQty first.
type PricingTier struct {
	ID     string   `json:"id"`
	MinQty float64  `json:"minQty"`
	MaxQty *float64 `json:"maxQty,omitempty"`
	Rate   float64  `json:"rate"`
}

// AdjustmentSet carries every post-subtotal adjustment applied when
// computing the final balance.
type AdjustmentSet struct {
	DiscountAmount     float64 `json:"discountAmount"`
	TaxEnabled         bool    `json:"taxEnabled"`
	TaxRatePercent     float64 `json:"taxRatePercent"`
	PreviousBalanceDue float64 `json:"previousBalanceDue"`
	AdvanceReceived    float64 `json:"advanceReceived"`
}

// PartyInfo holds the issuing company's identity and the billed
// client's identity. Free text; the only validation anywhere is the
// non-empty client-name check on save.
type PartyInfo struct {
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	CompanyEmail   string `json:"companyEmail"`
	CompanyPhone   string `json:"companyPhone"`
	BrandColor     string `json:"brandColor"`
	ClientName     string `json:"clientName"`
	ClientAddress  string `json:"clientAddress"`
}

// PaymentMethod selects which payment details appear on the document.
type PaymentMethod string

const (
	PayBank PaymentMethod = "bank"
	PayUPI  PaymentMethod = "upi"
	PayBoth PaymentMethod = "both"
	PayNone PaymentMethod = "none"
)

// UsesBank reports whether bank details are in effect.
func (m PaymentMethod) UsesBank() bool { return m == PayBank || m == PayBoth }

// UsesUPI reports whether UPI details are in effect.
func (m PaymentMethod) UsesUPI() bool { return m == PayUPI || m == PayBoth }

// Valid reports whether m is one of the known method values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PayBank, PayUPI, PayBoth, PayNone:
		return true
	}
	return false
}

// PaymentInfo holds the payment method plus the corresponding fields.
type PaymentInfo struct {
	Method                PaymentMethod `json:"method"`
	BankName              string        `json:"bankName"`
	AccountNumber         string        `json:"accountNumber"`
	RoutingCode           string        `json:"routingCode"`
	UPIHandle             string        `json:"upiHandle"`
	SignatoryName         string        `json:"signatoryName"`
	IncludeSignatoryBlock bool          `json:"includeSignatoryBlock"`
}

// AnnexureRow is one freeform row on the optional second page.
type AnnexureRow struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Annexure is the optional second page: a title plus either structured
// rows, freeform rich text, or both.
type Annexure struct {
	Title string        `json:"title"`
	Rows  []AnnexureRow `json:"rows,omitempty"`
	Body  string        `json:"body,omitempty"`
}

// DocumentMeta is everything about a document that is neither a line
// item, an adjustment, party identity, nor payment detail. Dates are
// user-edited ISO day strings (YYYY-MM-DD), kept as text the way the
// form fields produce them. Notes support a minimal **bold** span
// markup consumed by the renderer.
type DocumentMeta struct {
	Kind           DocumentKind `json:"kind"`
	DocumentNumber string       `json:"documentNumber"`
	IssueDate      string       `json:"issueDate"`
	DueDate        string       `json:"dueDate"`
	ServiceType    string       `json:"serviceType"`
	Recurring      bool         `json:"recurring"`
	Notes          string       `json:"notes"`
	Annexure       Annexure     `json:"annexure"`
}
