package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indiebyll/pkg/models"
)

func snapshot(number string) *models.InvoiceSnapshot {
	return &models.InvoiceSnapshot{
		DocumentNumber: number,
		SavedAt:        time.Now(),
		Meta:           models.DocumentMeta{Kind: models.KindInvoice, DocumentNumber: number},
		Items:          []models.LineItem{{ID: "li1", Description: "design retainer", Quantity: 1, UnitPrice: 25000}},
	}
}

func TestCreateClient(t *testing.T) {
	s := New()

	id, err := s.CreateClient("  Ramesh Traders Inc.  ")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	clients := s.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, "Ramesh Traders Inc.", clients[0].Name)
	assert.Equal(t, id, clients[0].ID)
}

func TestCreateClientEmptyNameLeavesStoreUnchanged(t *testing.T) {
	s := New()
	_, err := s.CreateClient("existing")
	require.NoError(t, err)

	before := s.Len()
	_, err = s.CreateClient("   ")
	assert.ErrorIs(t, err, ErrClientNameRequired)
	assert.Equal(t, before, s.Len())
}

func TestClientsKeepInsertionOrder(t *testing.T) {
	s := New()
	names := []string{"alpha", "bravo", "charlie"}
	for _, n := range names {
		_, err := s.CreateClient(n)
		require.NoError(t, err)
	}

	// Listing is a pure read: repeated calls agree.
	for iter := 0; iter < 2; iter++ {
		clients := s.Clients()
		require.Len(t, clients, len(names))
		for i, n := range names {
			assert.Equal(t, n, clients[i].Name)
		}
	}
}

func TestSaveSnapshotRequiresActiveClient(t *testing.T) {
	s := New()
	_, err := s.CreateClient("someone")
	require.NoError(t, err)

	err = s.SaveSnapshot("", snapshot("INV-2026-001"))
	assert.ErrorIs(t, err, ErrNoActiveClient)

	err = s.SaveSnapshot("no-such-id", snapshot("INV-2026-001"))
	assert.ErrorIs(t, err, ErrNoActiveClient)

	// Nothing was written anywhere.
	for _, ref := range s.Clients() {
		c, err := s.Client(ref.ID)
		require.NoError(t, err)
		assert.Empty(t, c.Invoices)
	}
}

func TestSaveSnapshotUpsertsByDocumentNumber(t *testing.T) {
	s := New()
	id, err := s.CreateClient("acme")
	require.NoError(t, err)

	first := snapshot("INV-2026-001")
	require.NoError(t, s.SaveSnapshot(id, first))
	require.NoError(t, s.SaveSnapshot(id, snapshot("INV-2026-002")))

	// Re-saving number 001 must replace in place, not append.
	updated := snapshot("INV-2026-001")
	updated.Items[0].UnitPrice = 30000
	require.NoError(t, s.SaveSnapshot(id, updated))

	c, err := s.Client(id)
	require.NoError(t, err)
	require.Len(t, c.Invoices, 2)
	assert.Equal(t, "INV-2026-001", c.Invoices[0].DocumentNumber)
	assert.Equal(t, 30000.0, c.Invoices[0].Items[0].UnitPrice)
	assert.Equal(t, "INV-2026-002", c.Invoices[1].DocumentNumber)
}

func TestSaveSnapshotStoresACopy(t *testing.T) {
	s := New()
	id, err := s.CreateClient("acme")
	require.NoError(t, err)

	snap := snapshot("INV-2026-001")
	require.NoError(t, s.SaveSnapshot(id, snap))

	// Mutating the caller's snapshot afterwards must not reach the store.
	snap.Items[0].Quantity = 99

	stored, err := s.LoadSnapshot(id, "INV-2026-001")
	require.NoError(t, err)
	assert.Equal(t, 1.0, stored.Items[0].Quantity)
}

func TestLoadLatestSnapshot(t *testing.T) {
	s := New()
	id, err := s.CreateClient("acme")
	require.NoError(t, err)

	latest, err := s.LoadLatestSnapshot(id)
	require.NoError(t, err)
	assert.Nil(t, latest, "client with no history yields nil")

	require.NoError(t, s.SaveSnapshot(id, snapshot("INV-2026-001")))
	require.NoError(t, s.SaveSnapshot(id, snapshot("INV-2026-002")))

	latest, err = s.LoadLatestSnapshot(id)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "INV-2026-002", latest.DocumentNumber)

	_, err = s.LoadLatestSnapshot("ghost")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestLoadSnapshotNotFound(t *testing.T) {
	s := New()
	id, err := s.CreateClient("acme")
	require.NoError(t, err)
	require.NoError(t, s.SaveSnapshot(id, snapshot("INV-2026-001")))

	_, err = s.LoadSnapshot(id, "INV-2026-042")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	_, err = s.LoadSnapshot("ghost", "INV-2026-001")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestNextDocumentNumber(t *testing.T) {
	now := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	s := New()

	a, err := s.CreateClient("alpha")
	require.NoError(t, err)
	b, err := s.CreateClient("bravo")
	require.NoError(t, err)

	assert.Equal(t, "INV-2026-001", s.NextDocumentNumberAt("INV", now))

	// Sequences count across all clients within the year.
	require.NoError(t, s.SaveSnapshot(a, snapshot("INV-2026-001")))
	require.NoError(t, s.SaveSnapshot(b, snapshot("INV-2026-007")))
	assert.Equal(t, "INV-2026-008", s.NextDocumentNumberAt("INV", now))

	// Other years, other prefixes and malformed numbers are ignored.
	require.NoError(t, s.SaveSnapshot(a, snapshot("INV-2025-900")))
	require.NoError(t, s.SaveSnapshot(a, snapshot("QUO-2026-050")))
	require.NoError(t, s.SaveSnapshot(a, snapshot("custom-42")))
	assert.Equal(t, "INV-2026-008", s.NextDocumentNumberAt("INV", now))
	assert.Equal(t, "QUO-2026-051", s.NextDocumentNumberAt("QUO", now))
}

func TestNextDocumentNumberMonotonic(t *testing.T) {
	now := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	s := New()
	id, err := s.CreateClient("acme")
	require.NoError(t, err)

	for seq := 1; seq <= 5; seq++ {
		number := s.NextDocumentNumberAt("INV", now)
		assert.Equal(t, fmt.Sprintf("INV-2026-%03d", seq), number)
		require.NoError(t, s.SaveSnapshot(id, snapshot(number)))
	}
}
