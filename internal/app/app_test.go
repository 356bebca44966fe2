package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indiebyll/internal/persist"
	"indiebyll/internal/store"
	"indiebyll/pkg/models"
)

var testNow = time.Date(2026, time.May, 20, 15, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) *App {
	t.Helper()
	files := persist.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	a, err := Load(files)
	require.NoError(t, err)
	a.clock = func() time.Time { return testNow }
	return a
}

func TestLoadFreshStartsFromDefaults(t *testing.T) {
	a := newTestApp(t)

	assert.Empty(t, a.CurrentClientID())
	assert.Empty(t, a.Clients())
	assert.Equal(t, fmt.Sprintf("INV-%d-001", time.Now().Year()), a.Doc().Meta.DocumentNumber)
}

func TestAddClientResetsEditorAndPersists(t *testing.T) {
	a := newTestApp(t)

	id, err := a.AddClient("Ramesh Traders")
	require.NoError(t, err)

	assert.Equal(t, id, a.CurrentClientID())
	assert.Equal(t, "Ramesh Traders", a.CurrentClientName())
	assert.Equal(t, "Ramesh Traders", a.Doc().Party.ClientName)
	assert.Equal(t, "INV-2026-001", a.Doc().Meta.DocumentNumber)

	// State hit the data file and reloads intact.
	reloaded, err := Load(a.files)
	require.NoError(t, err)
	assert.Equal(t, id, reloaded.CurrentClientID())
	assert.Equal(t, "Ramesh Traders", reloaded.Doc().Party.ClientName)
}

func TestAddClientEmptyName(t *testing.T) {
	a := newTestApp(t)
	_, err := a.AddClient("  ")
	assert.ErrorIs(t, err, store.ErrClientNameRequired)
	assert.Empty(t, a.Clients())
}

func TestSaveAndReloadDocument(t *testing.T) {
	a := newTestApp(t)
	_, err := a.AddClient("acme")
	require.NoError(t, err)

	a.Doc().SetItemPrice(a.Doc().Items[0].ID, 12000)
	require.NoError(t, a.SaveDocument())

	// Saving again with the same number upserts, not appends.
	a.Doc().SetDiscountAmount(1000)
	require.NoError(t, a.SaveDocument())

	history, err := a.ClientHistory(a.CurrentClientID())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1000.0, history[0].Adjustments.DiscountAmount)
}

func TestSaveDocumentWithoutClient(t *testing.T) {
	a := newTestApp(t)
	err := a.SaveDocument()
	assert.ErrorIs(t, err, store.ErrNoActiveClient)

	// Nothing got written into any client.
	for _, ref := range a.Clients() {
		history, herr := a.ClientHistory(ref.ID)
		require.NoError(t, herr)
		assert.Empty(t, history)
	}
}

func TestStartNewDocument(t *testing.T) {
	a := newTestApp(t)

	err := a.StartNewDocument(models.KindInvoice)
	assert.ErrorIs(t, err, store.ErrNoActiveClient)

	_, err = a.AddClient("acme")
	require.NoError(t, err)
	require.NoError(t, a.SaveDocument()) // INV-2026-001

	require.NoError(t, a.StartNewDocument(models.KindInvoice))
	assert.Equal(t, "INV-2026-002", a.Doc().Meta.DocumentNumber)
	assert.Equal(t, "acme", a.Doc().Party.ClientName, "client binding survives")
	assert.Len(t, a.Doc().Items, 1)
}

func TestStartNewQuotationUsesQuotationNumbering(t *testing.T) {
	a := newTestApp(t)
	_, err := a.AddClient("acme")
	require.NoError(t, err)
	require.NoError(t, a.SaveDocument())

	require.NoError(t, a.StartNewDocument(models.KindQuotation))
	assert.Equal(t, models.KindQuotation, a.Doc().Meta.Kind)
	assert.Equal(t, "QUO-2026-001", a.Doc().Meta.DocumentNumber,
		"quotation sequence is independent of invoice sequence")
}

func TestSelectClientLoadsLatest(t *testing.T) {
	a := newTestApp(t)
	first, err := a.AddClient("first")
	require.NoError(t, err)
	a.Doc().SetNotes("first client's invoice")
	require.NoError(t, a.SaveDocument())

	second, err := a.AddClient("second")
	require.NoError(t, err)
	assert.Equal(t, second, a.CurrentClientID())

	require.NoError(t, a.SelectClient(first))
	assert.Equal(t, first, a.CurrentClientID())
	assert.Equal(t, "first client's invoice", a.Doc().Meta.Notes)
	assert.Equal(t, "first", a.Doc().Party.ClientName)

	// A client with no history gets defaults and a fresh number.
	require.NoError(t, a.SelectClient(second))
	assert.Equal(t, "second", a.Doc().Party.ClientName)
	assert.Equal(t, "INV-2026-002", a.Doc().Meta.DocumentNumber)
}

func TestSelectClientRestoresClientIdentity(t *testing.T) {
	a := newTestApp(t)
	alpha, err := a.AddClient("Alpha Exports")
	require.NoError(t, err)
	a.Doc().SetClientAddress("1 Alpha Street")
	require.NoError(t, a.SaveDocument())

	_, err = a.AddClient("Bravo Studios")
	require.NoError(t, err)
	a.Doc().SetClientAddress("2 Bravo Road")
	require.NoError(t, a.SaveDocument())

	// Switching back must rebill the document to the selected client,
	// not leave the previous client's identity in the buffer.
	require.NoError(t, a.SelectClient(alpha))
	assert.Equal(t, "Alpha Exports", a.Doc().Party.ClientName)
	assert.Equal(t, "1 Alpha Street", a.Doc().Party.ClientAddress)
}

func TestLoadDocumentByNumber(t *testing.T) {
	a := newTestApp(t)
	_, err := a.AddClient("acme")
	require.NoError(t, err)

	a.Doc().SetNotes("version one")
	require.NoError(t, a.SaveDocument())
	require.NoError(t, a.StartNewDocument(models.KindInvoice))
	a.Doc().SetNotes("version two")
	require.NoError(t, a.SaveDocument())

	require.NoError(t, a.LoadDocument("INV-2026-001"))
	assert.Equal(t, "version one", a.Doc().Meta.Notes)

	err = a.LoadDocument("INV-2026-099")
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
}

func TestCorruptDataFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	a, err := Load(persist.NewFileStore(path))
	require.NoError(t, err)
	assert.Empty(t, a.Clients())
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	a := newTestApp(t)
	_, err := a.AddClient("acme")
	require.NoError(t, err)

	// Point the data file somewhere unwritable; mutations keep working.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	a.files = persist.NewFileStore(filepath.Join(blocker, "nested", "data.json"))

	require.NoError(t, a.SaveDocument())
	history, err := a.ClientHistory(a.CurrentClientID())
	require.NoError(t, err)
	assert.Len(t, history, 1, "in-memory state is not rolled back on write failure")
}

func TestAssets(t *testing.T) {
	a := newTestApp(t)

	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 8)...)
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, png, 0o644))

	require.NoError(t, a.SetAsset(SlotLogo, path))
	require.NotNil(t, a.Asset(SlotLogo))
	assert.Equal(t, "image/png", a.Asset(SlotLogo).MIME)
	assert.Nil(t, a.Asset(SlotQRCode))

	a.RemoveAsset(SlotLogo)
	assert.Nil(t, a.Asset(SlotLogo))
}
