package models

import "time"

// InvoiceSnapshot is an immutable-once-saved capture of one document's
// full state at the moment of saving. It is tagged with its document
// number (the upsert key within a client) and a saved timestamp.
// Stored snapshots must never alias live editing state: callers deep
// copy on save and on load.
type InvoiceSnapshot struct {
	DocumentNumber string        `json:"documentNumber"`
	SavedAt        time.Time     `json:"savedAt"`
	Meta           DocumentMeta  `json:"meta"`
	Items          []LineItem    `json:"items"`
	Adjustments    AdjustmentSet `json:"adjustments"`
	Party          PartyInfo     `json:"party"`
	Payment        PaymentInfo   `json:"payment"`
}

// Clone returns a deep copy of the snapshot. Slices are copied so that
// mutations to the clone never reach the original.
func (s *InvoiceSnapshot) Clone() *InvoiceSnapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Items = append([]LineItem(nil), s.Items...)
	out.Meta.Annexure.Rows = append([]AnnexureRow(nil), s.Meta.Annexure.Rows...)
	return &out
}

// Client owns an ordered history of saved snapshots. Clients are
// created explicitly, identified by a time-based opaque id, and are
// never deleted in-app.
type Client struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Invoices []InvoiceSnapshot `json:"invoices"`
}

// Latest returns a copy of the most recently appended snapshot, or nil
// when the client has no saved documents yet.
func (c *Client) Latest() *InvoiceSnapshot {
	if c == nil || len(c.Invoices) == 0 {
		return nil
	}
	return c.Invoices[len(c.Invoices)-1].Clone()
}
