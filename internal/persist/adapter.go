// Package persist serializes the active document state and the client
// record store to a single JSON data file and restores them on startup,
// normalizing saves written by older schema revisions. Binary image
// assets cross this boundary as base64 text; in memory they are decoded
// bytes with an on-demand data-URI display reference.
package persist

import (
	"encoding/json"
	"sort"

	"indiebyll/internal/document"
	"indiebyll/internal/store"
	"indiebyll/pkg/models"
)

// SchemaVersion is the current revision of the persisted shape. Loads
// tolerate older revisions by defaulting the fields they lack; they
// never fail validation over a missing field.
const SchemaVersion = 5

// Assets are the three optional binary images a document can carry.
type Assets struct {
	Logo      *Asset
	QRCode    *Asset
	Signature *Asset
}

// AppState is everything the adapter round-trips: the active editing
// buffer, the client record store, the current-client pointer and the
// image assets.
type AppState struct {
	Doc             *document.State
	Store           *store.Store
	CurrentClientID string
	Assets          Assets
}

// schema is the on-disk JSON shape. It mirrors the models directly
// except where migration needs to distinguish "absent" from a zero
// value (the signatory-block flag, where false is a real choice).
type schema struct {
	SchemaVersion int `json:"schemaVersion"`

	DocumentMeta models.DocumentMeta  `json:"documentMeta"`
	Items        []models.LineItem    `json:"items"`
	Adjustments  models.AdjustmentSet `json:"adjustments"`
	PartyInfo    models.PartyInfo     `json:"partyInfo"`
	PaymentInfo  paymentRecord        `json:"paymentInfo"`

	PricingTiers     []models.PricingTier `json:"pricingTiers,omitempty"`
	UseTieredPricing bool                 `json:"useTieredPricing"`
	CurrencyCode     string               `json:"currencyCode"`

	Clients         map[string]clientRecord `json:"clients"`
	ClientOrder     []string                `json:"clientOrder,omitempty"`
	CurrentClientID string                  `json:"currentClientId,omitempty"`

	LogoBase64      *string `json:"logoBase64"`
	QRBase64        *string `json:"qrBase64"`
	SignatureBase64 *string `json:"signatureBase64"`
}

type clientRecord struct {
	Name     string                   `json:"name"`
	Invoices []models.InvoiceSnapshot `json:"invoices"`
}

type paymentRecord struct {
	Method                models.PaymentMethod `json:"method"`
	BankName              string               `json:"bankName"`
	AccountNumber         string               `json:"accountNumber"`
	RoutingCode           string               `json:"routingCode"`
	UPIHandle             string               `json:"upiHandle"`
	SignatoryName         string               `json:"signatoryName"`
	IncludeSignatoryBlock *bool                `json:"includeSignatoryBlock,omitempty"`
}

// Serialize encodes the full application state as the JSON blob written
// to the data file. Live display references are never serialized; only
// the base64 text of each asset is.
func Serialize(app *AppState) ([]byte, error) {
	doc := app.Doc
	include := doc.Payment.IncludeSignatoryBlock

	out := schema{
		SchemaVersion: SchemaVersion,
		DocumentMeta:  doc.Meta,
		Items:         doc.Items,
		Adjustments:   doc.Adjustments,
		PartyInfo:     doc.Party,
		PaymentInfo: paymentRecord{
			Method:                doc.Payment.Method,
			BankName:              doc.Payment.BankName,
			AccountNumber:         doc.Payment.AccountNumber,
			RoutingCode:           doc.Payment.RoutingCode,
			UPIHandle:             doc.Payment.UPIHandle,
			SignatoryName:         doc.Payment.SignatoryName,
			IncludeSignatoryBlock: &include,
		},
		PricingTiers:     doc.Tiers,
		UseTieredPricing: doc.UseTieredPricing,
		CurrencyCode:     doc.CurrencyCode,
		Clients:          map[string]clientRecord{},
		CurrentClientID:  app.CurrentClientID,
		LogoBase64:       app.Assets.Logo.encode(),
		QRBase64:         app.Assets.QRCode.encode(),
		SignatureBase64:  app.Assets.Signature.encode(),
	}

	for _, c := range app.Store.All() {
		out.ClientOrder = append(out.ClientOrder, c.ID)
		out.Clients[c.ID] = clientRecord{Name: c.Name, Invoices: c.Invoices}
	}

	return json.MarshalIndent(out, "", "  ")
}

// Deserialize parses a stored blob back into application state,
// applying the forward migration for fields introduced after the save
// was written and rebuilding each asset's decoded bytes from its base64
// text. The returned state is fully usable even for the oldest saves.
func Deserialize(blob []byte) (*AppState, error) {
	var in schema
	if err := json.Unmarshal(blob, &in); err != nil {
		return nil, &PersistError{Op: "Deserialize", Err: ErrCorruptStore}
	}

	doc := &document.State{
		Meta:             in.DocumentMeta,
		Items:            in.Items,
		Adjustments:      in.Adjustments,
		Party:            in.PartyInfo,
		Payment:          restorePayment(in.PaymentInfo),
		Tiers:            in.PricingTiers,
		UseTieredPricing: in.UseTieredPricing,
		CurrencyCode:     in.CurrencyCode,
	}
	migrate(doc)

	app := &AppState{
		Doc:             doc,
		Store:           store.FromClients(restoreClients(in)),
		CurrentClientID: in.CurrentClientID,
		Assets: Assets{
			Logo:      decodeAsset(in.LogoBase64),
			QRCode:    decodeAsset(in.QRBase64),
			Signature: decodeAsset(in.SignatureBase64),
		},
	}

	// Drop a current-client pointer that no longer resolves.
	if app.CurrentClientID != "" {
		if _, err := app.Store.Client(app.CurrentClientID); err != nil {
			app.CurrentClientID = ""
		}
	}
	return app, nil
}

func restorePayment(rec paymentRecord) models.PaymentInfo {
	p := models.PaymentInfo{
		Method:        rec.Method,
		BankName:      rec.BankName,
		AccountNumber: rec.AccountNumber,
		RoutingCode:   rec.RoutingCode,
		UPIHandle:     rec.UPIHandle,
		SignatoryName: rec.SignatoryName,
		// Saves that predate the toggle show the block, matching how
		// those documents always rendered.
		IncludeSignatoryBlock: true,
	}
	if rec.IncludeSignatoryBlock != nil {
		p.IncludeSignatoryBlock = *rec.IncludeSignatoryBlock
	}
	return p
}

// migrate defaults fields added in later schema revisions. Run once at
// load time; points of use never check for missing fields.
func migrate(doc *document.State) {
	if doc.Meta.Kind == "" {
		doc.Meta.Kind = models.KindInvoice
	}
	if doc.Adjustments.TaxRatePercent == 0 {
		doc.Adjustments.TaxRatePercent = document.DefaultTaxRatePercent
	}
	if doc.Payment.Method == "" {
		doc.Payment.Method = document.DefaultPaymentMethod
	}
	if doc.Meta.Notes == "" {
		doc.Meta.Notes = document.DefaultNotes
	}
	if doc.CurrencyCode == "" {
		doc.CurrencyCode = document.DefaultCurrencyCode
	}
}

func restoreClients(in schema) []*models.Client {
	order := in.ClientOrder
	if len(order) == 0 {
		// Saves older than the explicit order list: client ids are
		// time-based, so id order is creation order.
		for id := range in.Clients {
			order = append(order, id)
		}
		sort.Strings(order)
	}

	clients := make([]*models.Client, 0, len(order))
	for _, id := range order {
		rec, ok := in.Clients[id]
		if !ok {
			continue
		}
		// Saves older than the per-snapshot party block: bind at least
		// the client name so reloading never misattributes a document.
		for i := range rec.Invoices {
			if rec.Invoices[i].Party.ClientName == "" {
				rec.Invoices[i].Party.ClientName = rec.Name
			}
		}
		clients = append(clients, &models.Client{ID: id, Name: rec.Name, Invoices: rec.Invoices})
	}
	return clients
}
