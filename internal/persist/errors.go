package persist

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageWrite is returned when the local data file cannot be
	// written (disk full, permissions, quota). Non-fatal: in-memory
	// state stays authoritative and is not rolled back.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrImageTooLarge is returned when an uploaded image asset exceeds
	// the size ceiling.
	ErrImageTooLarge = errors.New("image exceeds maximum size limit")

	// ErrCorruptStore is returned when the data file exists but cannot
	// be parsed.
	ErrCorruptStore = errors.New("stored data is corrupt")
)

// PersistError wraps persistence failures with the operation and the
// file path involved.
type PersistError struct {
	// Op is the operation that failed (e.g., "Save", "ReadImage").
	Op string

	// Path is the file involved, if any.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *PersistError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("persist: %s failed for %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("persist: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *PersistError) Unwrap() error {
	return e.Err
}

// Is implements error matching against the sentinel errors above.
func (e *PersistError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
