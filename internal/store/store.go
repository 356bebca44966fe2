// Package store keeps the client → invoice-history records: an
// insertion-ordered collection of clients, each owning an ordered list
// of saved document snapshots. Everything lives in memory; the persist
// package serializes the store to the local data file.
package store

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"indiebyll/internal/logger"
	"indiebyll/pkg/models"
)

// numberPattern matches PREFIX-YEAR-NNN document numbers. Numbers that
// don't match are simply ignored when computing the next sequence.
var numberPattern = regexp.MustCompile(`^([A-Z]+)-(\d{4})-(\d+)$`)

// ClientRef is the listing view of a client: id and display name only.
type ClientRef struct {
	ID   string
	Name string
}

// Store is the in-memory client/invoice record store. It is
// single-writer by construction (one command handler runs at a time),
// so no locking is needed.
type Store struct {
	order []string
	byID  map[string]*models.Client
	log   zerolog.Logger
}

// New returns an empty store.
func New() *Store {
	return &Store{
		byID: make(map[string]*models.Client),
		log:  logger.WithComponent("store"),
	}
}

// FromClients rebuilds a store from persisted client records,
// preserving their order. Used by the persistence adapter on load.
func FromClients(clients []*models.Client) *Store {
	s := New()
	for _, c := range clients {
		if c == nil || c.ID == "" {
			continue
		}
		s.order = append(s.order, c.ID)
		s.byID[c.ID] = c
	}
	return s
}

// CreateClient inserts a new client with an empty invoice history and
// returns its id. The id is a ULID, so ids are time-ordered the same
// way insertion order is. Fails with ErrClientNameRequired when the
// trimmed name is empty; the store is left untouched.
func (s *Store) CreateClient(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", &StoreError{Op: "CreateClient", Err: ErrClientNameRequired}
	}

	id := ulid.Make().String()
	s.order = append(s.order, id)
	s.byID[id] = &models.Client{ID: id, Name: trimmed}

	s.log.Info().
		Str("client_id", id).
		Str("name", trimmed).
		Msg("Client created")
	return id, nil
}

// Clients lists all clients in insertion order. Pure read.
func (s *Store) Clients() []ClientRef {
	refs := make([]ClientRef, 0, len(s.order))
	for _, id := range s.order {
		refs = append(refs, ClientRef{ID: id, Name: s.byID[id].Name})
	}
	return refs
}

// Client returns the stored client record for an id.
func (s *Store) Client(id string) (*models.Client, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, &StoreError{Op: "Client", ClientID: id, Err: ErrClientNotFound}
	}
	return c, nil
}

// Len reports the number of clients.
func (s *Store) Len() int { return len(s.order) }

// All returns every client record in insertion order, for
// serialization. Callers must not mutate the returned records.
func (s *Store) All() []*models.Client {
	out := make([]*models.Client, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// LoadLatestSnapshot returns a copy of the client's last-saved
// snapshot, or nil when the client has none yet (the caller then starts
// from defaults with a freshly generated document number).
func (s *Store) LoadLatestSnapshot(clientID string) (*models.InvoiceSnapshot, error) {
	c, ok := s.byID[clientID]
	if !ok {
		return nil, &StoreError{Op: "LoadLatestSnapshot", ClientID: clientID, Err: ErrClientNotFound}
	}
	return c.Latest(), nil
}

// LoadSnapshot returns a copy of the snapshot saved under the given
// document number for the client.
func (s *Store) LoadSnapshot(clientID, documentNumber string) (*models.InvoiceSnapshot, error) {
	c, ok := s.byID[clientID]
	if !ok {
		return nil, &StoreError{Op: "LoadSnapshot", ClientID: clientID, Err: ErrClientNotFound}
	}
	for i := range c.Invoices {
		if c.Invoices[i].DocumentNumber == documentNumber {
			return c.Invoices[i].Clone(), nil
		}
	}
	return nil, &StoreError{
		Op:             "LoadSnapshot",
		ClientID:       clientID,
		DocumentNumber: documentNumber,
		Err:            ErrSnapshotNotFound,
	}
}

// SaveSnapshot upserts a snapshot into the client's history, keyed by
// document number: an existing snapshot with the same number is
// replaced in place (keeping its position), otherwise the snapshot is
// appended. Fails with ErrNoActiveClient when the client id is empty or
// unresolvable, without writing anything.
func (s *Store) SaveSnapshot(clientID string, snap *models.InvoiceSnapshot) error {
	c, ok := s.byID[clientID]
	if clientID == "" || !ok {
		return &StoreError{Op: "SaveSnapshot", ClientID: clientID, Err: ErrNoActiveClient}
	}

	stored := snap.Clone()
	replaced := false
	for i := range c.Invoices {
		if c.Invoices[i].DocumentNumber == stored.DocumentNumber {
			c.Invoices[i] = *stored
			replaced = true
			break
		}
	}
	if !replaced {
		c.Invoices = append(c.Invoices, *stored)
	}

	s.log.Info().
		Str("client_id", clientID).
		Str("document_number", stored.DocumentNumber).
		Bool("replaced", replaced).
		Int("history_size", len(c.Invoices)).
		Msg("Snapshot saved")
	return nil
}

// NextDocumentNumber scans every snapshot of every client for numbers
// matching prefix-YEAR-NNN, takes the highest sequence for the current
// year and returns prefix-YEAR-(max+1), zero-padded to three digits.
func (s *Store) NextDocumentNumber(prefix string) string {
	return s.NextDocumentNumberAt(prefix, time.Now())
}

// NextDocumentNumberAt is NextDocumentNumber against an explicit clock.
func (s *Store) NextDocumentNumberAt(prefix string, now time.Time) string {
	year := now.Year()
	maxSeq := 0
	for _, id := range s.order {
		for i := range s.byID[id].Invoices {
			m := numberPattern.FindStringSubmatch(s.byID[id].Invoices[i].DocumentNumber)
			if m == nil || m[1] != prefix {
				continue
			}
			y, _ := strconv.Atoi(m[2])
			if y != year {
				continue
			}
			if seq, err := strconv.Atoi(m[3]); err == nil && seq > maxSeq {
				maxSeq = seq
			}
		}
	}
	return fmt.Sprintf("%s-%d-%03d", prefix, year, maxSeq+1)
}
