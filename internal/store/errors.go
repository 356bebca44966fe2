package store

import (
	"errors"
	"fmt"
)

// Common record-store errors. All of them are recoverable: the caller
// surfaces a message and the store is left unchanged.
var (
	// ErrClientNameRequired is returned when a client is created with an
	// empty (after trimming) name.
	ErrClientNameRequired = errors.New("client name is required")

	// ErrNoActiveClient is returned when a save is attempted without a
	// resolvable client id.
	ErrNoActiveClient = errors.New("no active client selected")

	// ErrClientNotFound is returned when a client id does not exist in
	// the store.
	ErrClientNotFound = errors.New("client not found")

	// ErrSnapshotNotFound is returned when a document number has no
	// saved snapshot for the given client.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// StoreError wraps store failures with the operation and the
// identifiers involved.
type StoreError struct {
	// Op is the operation that failed (e.g., "SaveSnapshot").
	Op string

	// Err is the underlying error.
	Err error

	// ClientID identifies the client involved, if any.
	ClientID string

	// DocumentNumber identifies the snapshot involved, if any.
	DocumentNumber string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	switch {
	case e.DocumentNumber != "":
		return fmt.Sprintf("store: %s failed for client %q document %q: %v",
			e.Op, e.ClientID, e.DocumentNumber, e.Err)
	case e.ClientID != "":
		return fmt.Sprintf("store: %s failed for client %q: %v", e.Op, e.ClientID, e.Err)
	}
	return fmt.Sprintf("store: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is implements error matching against the sentinel errors above.
func (e *StoreError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
