package persist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"indiebyll/internal/logger"
)

// FileStore reads and writes the single local data file that plays the
// role of the browser's local storage. Writes are atomic
// (temp file + rename) so a failed write never truncates an existing
// save.
type FileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore returns a store bound to the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		log:  logger.WithComponent("filestore"),
	}
}

// Path returns the bound data file path.
func (f *FileStore) Path() string { return f.path }

// Load reads the stored blob. A missing file is not an error: it means
// a first run, and the caller starts from defaults.
func (f *FileStore) Load() ([]byte, error) {
	blob, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.log.Debug().Str("path", f.path).Msg("No data file yet, starting fresh")
			return nil, nil
		}
		return nil, &PersistError{Op: "Load", Path: f.path, Err: err}
	}
	return blob, nil
}

// Save writes the blob atomically. Failures wrap ErrStorageWrite; the
// caller surfaces a warning and keeps going, since in-memory state
// remains the source of truth.
func (f *FileStore) Save(blob []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return f.writeError("MkdirAll", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return f.writeError("CreateTemp", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return f.writeError("Write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return f.writeError("Close", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return f.writeError("Rename", err)
	}

	f.log.Debug().
		Str("path", f.path).
		Int("bytes", len(blob)).
		Msg("Data file saved")
	return nil
}

func (f *FileStore) writeError(op string, err error) error {
	f.log.Error().
		Err(err).
		Str("path", f.path).
		Str("op", op).
		Msg("Data file write failed")
	return &PersistError{Op: "Save", Path: f.path, Err: fmt.Errorf("%w: %v", ErrStorageWrite, err)}
}
