// Package app wires the editing buffer, the client record store and
// the persistence adapter together. Each exported method is the
// backend of one user action; every mutating action ends with a
// fire-and-forget persist of the whole state.
package app

import (
	"time"

	"github.com/rs/zerolog"

	"indiebyll/internal/document"
	"indiebyll/internal/logger"
	"indiebyll/internal/persist"
	"indiebyll/internal/store"
	"indiebyll/pkg/models"
)

// App is the running application state plus its data file.
type App struct {
	state *persist.AppState
	files *persist.FileStore

	clock func() time.Time
	log   zerolog.Logger
}

// Load restores application state from the data file, or starts fresh
// when there is no save yet. A corrupt save is logged and replaced by
// defaults rather than aborting, the same recovery the generator has
// always had.
func Load(files *persist.FileStore) (*App, error) {
	a := &App{
		files: files,
		clock: time.Now,
		log:   logger.WithComponent("app"),
	}

	blob, err := files.Load()
	if err != nil {
		return nil, err
	}
	if blob != nil {
		state, derr := persist.Deserialize(blob)
		if derr == nil {
			a.state = state
			return a, nil
		}
		a.log.Warn().
			Err(derr).
			Str("path", files.Path()).
			Msg("Could not load saved state, starting from defaults")
	}

	a.state = a.freshState()
	return a, nil
}

func (a *App) freshState() *persist.AppState {
	st := store.New()
	number := st.NextDocumentNumberAt(models.KindInvoice.NumberPrefix(), a.clock())
	return &persist.AppState{
		Doc:   document.NewDefault(models.KindInvoice, number, a.clock()),
		Store: st,
	}
}

// Doc exposes the active editing buffer for field-level edits. Callers
// that mutate it must follow up with Persist.
func (a *App) Doc() *document.State { return a.state.Doc }

// CurrentClientID returns the id of the selected client, or "".
func (a *App) CurrentClientID() string { return a.state.CurrentClientID }

// CurrentClientName resolves the selected client's display name, or "".
func (a *App) CurrentClientName() string {
	if a.state.CurrentClientID == "" {
		return ""
	}
	c, err := a.state.Store.Client(a.state.CurrentClientID)
	if err != nil {
		return ""
	}
	return c.Name
}

// Clients lists all clients in creation order.
func (a *App) Clients() []store.ClientRef { return a.state.Store.Clients() }

// ClientHistory returns the saved snapshots for a client.
func (a *App) ClientHistory(clientID string) ([]models.InvoiceSnapshot, error) {
	c, err := a.state.Store.Client(clientID)
	if err != nil {
		return nil, err
	}
	return append([]models.InvoiceSnapshot(nil), c.Invoices...), nil
}

// AddClient creates a client, makes it current and resets the editor to
// a fresh document bound to it. Returns the new client id.
func (a *App) AddClient(name string) (string, error) {
	id, err := a.state.Store.CreateClient(name)
	if err != nil {
		return "", err
	}
	client, _ := a.state.Store.Client(id)

	a.state.CurrentClientID = id
	number := a.state.Store.NextDocumentNumberAt(a.state.Doc.Meta.Kind.NumberPrefix(), a.clock())
	a.state.Doc.ResetForNewClient(client, number, a.clock())

	a.Persist()
	return id, nil
}

// SelectClient makes a client current and loads its latest snapshot
// into the editor; a client with no history gets a fresh default
// document with the next number instead.
func (a *App) SelectClient(clientID string) error {
	latest, err := a.state.Store.LoadLatestSnapshot(clientID)
	if err != nil {
		return err
	}
	a.state.CurrentClientID = clientID

	if latest != nil {
		a.state.Doc.LoadSnapshot(latest)
	} else {
		client, _ := a.state.Store.Client(clientID)
		number := a.state.Store.NextDocumentNumberAt(a.state.Doc.Meta.Kind.NumberPrefix(), a.clock())
		a.state.Doc.ResetForNewClient(client, number, a.clock())
	}

	a.Persist()
	return nil
}

// LoadDocument loads a specific saved document of the current client
// into the editor.
func (a *App) LoadDocument(documentNumber string) error {
	if a.state.CurrentClientID == "" {
		return &store.StoreError{Op: "LoadDocument", Err: store.ErrNoActiveClient}
	}
	snap, err := a.state.Store.LoadSnapshot(a.state.CurrentClientID, documentNumber)
	if err != nil {
		return err
	}
	a.state.Doc.LoadSnapshot(snap)
	a.Persist()
	return nil
}

// StartNewDocument resets the editor to a fresh document of the given
// kind for the current client, regenerating the number. Fails without
// a selected client.
func (a *App) StartNewDocument(kind models.DocumentKind) error {
	if a.state.CurrentClientID == "" {
		return &store.StoreError{Op: "StartNewDocument", Err: store.ErrNoActiveClient}
	}
	if kind == "" {
		kind = a.state.Doc.Meta.Kind
	}

	// resetKeepingIdentity derives document kind from the buffer, so
	// switch it before resetting.
	a.state.Doc.Meta.Kind = kind
	number := a.state.Store.NextDocumentNumberAt(kind.NumberPrefix(), a.clock())
	a.state.Doc.ResetForNewDocument(number, a.clock())

	a.Persist()
	return nil
}

// SaveDocument captures the editor into a snapshot and upserts it into
// the current client's history.
func (a *App) SaveDocument() error {
	snap := a.state.Doc.Snapshot(a.clock())
	if err := a.state.Store.SaveSnapshot(a.state.CurrentClientID, snap); err != nil {
		return err
	}
	a.Persist()
	return nil
}

// AssetSlot names one of the three image attachments.
type AssetSlot string

const (
	SlotLogo      AssetSlot = "logo"
	SlotQRCode    AssetSlot = "qr"
	SlotSignature AssetSlot = "signature"
)

func (a *App) assetRef(slot AssetSlot) **persist.Asset {
	switch slot {
	case SlotQRCode:
		return &a.state.Assets.QRCode
	case SlotSignature:
		return &a.state.Assets.Signature
	default:
		return &a.state.Assets.Logo
	}
}

// SetAsset reads an image file into the given slot.
func (a *App) SetAsset(slot AssetSlot, path string) error {
	asset, err := persist.ReadImage(path)
	if err != nil {
		return err
	}
	*a.assetRef(slot) = asset
	a.Persist()
	return nil
}

// RemoveAsset clears the given slot.
func (a *App) RemoveAsset(slot AssetSlot) {
	*a.assetRef(slot) = nil
	a.Persist()
}

// Asset returns the image in the given slot, or nil.
func (a *App) Asset(slot AssetSlot) *persist.Asset { return *a.assetRef(slot) }

// Persist serializes everything to the data file. Failures are
// surfaced as a warning only: in-memory state stays authoritative and
// nothing is rolled back.
func (a *App) Persist() {
	blob, err := persist.Serialize(a.state)
	if err == nil {
		err = a.files.Save(blob)
	}
	if err != nil {
		a.log.Warn().
			Err(err).
			Str("path", a.files.Path()).
			Msg("Saving state failed; changes remain in memory only")
	}
}
