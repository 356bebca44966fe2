// Package document manages the active editing buffer: the single live
// instance of document meta, items, adjustments, party, payment and
// pricing tiers that every field write goes through. Nothing here
// computes totals or persists anything; derived values come lazily from
// the billing package and persistence sits behind the persist package.
package document

import (
	"time"

	"github.com/oklog/ulid/v2"

	"indiebyll/internal/billing"
	"indiebyll/pkg/models"
)

// State is the live editing buffer. It is distinct from any saved
// snapshot: loading copies snapshot data in, saving copies buffer data
// out, and mutations in between never touch the store.
type State struct {
	Meta        models.DocumentMeta
	Items       []models.LineItem
	Adjustments models.AdjustmentSet
	Party       models.PartyInfo
	Payment     models.PaymentInfo

	Tiers            []models.PricingTier
	UseTieredPricing bool

	CurrencyCode string
}

// NewDefault returns a fresh buffer with every field at its canned
// default and the given pre-computed document number.
func NewDefault(kind models.DocumentKind, number string, now time.Time) *State {
	return &State{
		Meta:         defaultMeta(kind, number, now),
		Items:        defaultItems(),
		Adjustments:  defaultAdjustments(),
		Party:        defaultParty(),
		Payment:      defaultPayment(),
		CurrencyCode: DefaultCurrencyCode,
	}
}

// ResetForNewClient rebuilds the buffer from defaults for a freshly
// created or newly selected client, binding the client's name.
func (s *State) ResetForNewClient(client *models.Client, number string, now time.Time) {
	s.resetKeepingIdentity(number, now)
	s.Party.ClientName = client.Name
}

// ResetForNewDocument starts a fresh document for the already-bound
// client: items collapse back to the single placeholder line, the
// number is regenerated by the caller, the client binding survives.
func (s *State) ResetForNewDocument(number string, now time.Time) {
	clientName, clientAddress := s.Party.ClientName, s.Party.ClientAddress
	s.resetKeepingIdentity(number, now)
	s.Party.ClientName = clientName
	s.Party.ClientAddress = clientAddress
}

// resetKeepingIdentity resets meta, items, adjustments and payment to
// defaults while preserving company identity, branding, tiers and
// currency, which belong to the user rather than to one document.
func (s *State) resetKeepingIdentity(number string, now time.Time) {
	kind := s.Meta.Kind
	if kind == "" {
		kind = models.KindInvoice
	}
	company := s.Party
	s.Meta = defaultMeta(kind, number, now)
	s.Items = defaultItems()
	s.Adjustments = defaultAdjustments()
	s.Payment = defaultPayment()
	s.Party = company
	s.Party.ClientName = ""
	s.Party.ClientAddress = ""
	if s.CurrencyCode == "" {
		s.CurrencyCode = DefaultCurrencyCode
	}
}

// LoadSnapshot deep-copies a stored snapshot into the buffer.
// Mutations to the buffer afterward never retroactively alter the
// snapshot.
func (s *State) LoadSnapshot(snap *models.InvoiceSnapshot) {
	copied := snap.Clone()
	s.Meta = copied.Meta
	s.Items = copied.Items
	s.Adjustments = copied.Adjustments
	s.Party = copied.Party
	s.Payment = copied.Payment
}

// Snapshot captures the buffer into a new immutable snapshot tagged
// with the current document number and the given timestamp.
func (s *State) Snapshot(now time.Time) *models.InvoiceSnapshot {
	snap := &models.InvoiceSnapshot{
		DocumentNumber: s.Meta.DocumentNumber,
		SavedAt:        now,
		Meta:           s.Meta,
		Items:          s.Items,
		Adjustments:    s.Adjustments,
		Party:          s.Party,
		Payment:        s.Payment,
	}
	return snap.Clone()
}

// Totals computes the current derived breakdown. Pure; recomputed on
// every call, never cached.
func (s *State) Totals() billing.Totals {
	return billing.Compute(s.Items, s.Adjustments)
}

/* item operations */

// AddItem appends an empty line (quantity 1, price 0) and returns its id.
func (s *State) AddItem() string {
	id := ulid.Make().String()
	s.Items = append(s.Items, models.LineItem{ID: id, Quantity: 1})
	return id
}

// RemoveItem deletes the line with the given id; unknown ids are a no-op.
func (s *State) RemoveItem(id string) {
	kept := s.Items[:0]
	for _, item := range s.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.Items = kept
}

func (s *State) item(id string) *models.LineItem {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// SetItemDescription replaces one line's description.
func (s *State) SetItemDescription(id, description string) {
	if item := s.item(id); item != nil {
		item.Description = description
	}
}

// SetItemPrice replaces one line's unit price.
func (s *State) SetItemPrice(id string, price float64) {
	if item := s.item(id); item != nil {
		item.UnitPrice = price
	}
}

// SetItemQuantity replaces one line's quantity. When tiered pricing is
// enabled the unit price is re-derived as the graduated total averaged
// over the quantity, mirroring how the quantity field behaves in the
// editor.
func (s *State) SetItemQuantity(id string, quantity float64) {
	item := s.item(id)
	if item == nil {
		return
	}
	item.Quantity = quantity
	if s.UseTieredPricing && quantity > 0 && len(s.Tiers) > 0 {
		item.UnitPrice = billing.GraduatedTotal(quantity, s.Tiers) / quantity
	}
}

/* pricing tier operations */

// AddTier appends a pricing tier and returns its id. Ranges are not
// validated for disjointness; lookup resolves overlaps deterministically.
func (s *State) AddTier(minQty float64, maxQty *float64, rate float64) string {
	id := ulid.Make().String()
	s.Tiers = append(s.Tiers, models.PricingTier{ID: id, MinQty: minQty, MaxQty: maxQty, Rate: rate})
	return id
}

// RemoveTier deletes the tier with the given id; unknown ids are a no-op.
func (s *State) RemoveTier(id string) {
	kept := s.Tiers[:0]
	for _, tier := range s.Tiers {
		if tier.ID != id {
			kept = append(kept, tier)
		}
	}
	s.Tiers = kept
}

/* annexure operations */

// AddAnnexureRow appends a row dated today and returns its id.
func (s *State) AddAnnexureRow(now time.Time) string {
	id := ulid.Make().String()
	s.Meta.Annexure.Rows = append(s.Meta.Annexure.Rows, models.AnnexureRow{
		ID:     id,
		Date:   now.Format("2006-01-02"),
		Status: "Completed",
	})
	return id
}

// RemoveAnnexureRow deletes the row with the given id.
func (s *State) RemoveAnnexureRow(id string) {
	kept := s.Meta.Annexure.Rows[:0]
	for _, row := range s.Meta.Annexure.Rows {
		if row.ID != id {
			kept = append(kept, row)
		}
	}
	s.Meta.Annexure.Rows = kept
}

// SetAnnexureRow updates one row's title, date or status, leaving empty
// arguments alone.
func (s *State) SetAnnexureRow(id, date, title, status string) {
	for i := range s.Meta.Annexure.Rows {
		if s.Meta.Annexure.Rows[i].ID != id {
			continue
		}
		if date != "" {
			s.Meta.Annexure.Rows[i].Date = date
		}
		if title != "" {
			s.Meta.Annexure.Rows[i].Title = title
		}
		if status != "" {
			s.Meta.Annexure.Rows[i].Status = status
		}
		return
	}
}
