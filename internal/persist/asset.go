package persist

import (
	"encoding/base64"
	"errors"
	"net/http"
	"os"
)

// MaxImageBytes is the ceiling for uploaded logo/QR/signature assets.
const MaxImageBytes = 2 * 1024 * 1024

// Asset is a binary image held in memory as decoded bytes. Base64
// encoding happens only at the serialize boundary, decoding only at
// deserialize; the display reference is re-derived on demand via
// DataURI and is never persisted.
type Asset struct {
	Data []byte
	MIME string
}

// DataURI returns the displayable data-URI reference for the asset.
// Only valid for the current session's in-memory bytes.
func (a *Asset) DataURI() string {
	if a == nil || len(a.Data) == 0 {
		return ""
	}
	mime := a.MIME
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// encode returns the base64 text stored in the data file, or nil for an
// absent asset.
func (a *Asset) encode() *string {
	if a == nil || len(a.Data) == 0 {
		return nil
	}
	s := base64.StdEncoding.EncodeToString(a.Data)
	return &s
}

// decodeAsset rebuilds an asset from its stored base64 text. Undecodable
// text yields no asset rather than a load failure.
func decodeAsset(encoded *string) *Asset {
	if encoded == nil || *encoded == "" {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(*encoded)
	if err != nil || len(data) == 0 {
		return nil
	}
	return &Asset{Data: data, MIME: http.DetectContentType(data)}
}

// ReadImage loads an image file from disk for use as a logo, QR code or
// signature, enforcing the size ceiling and sniffing the MIME type.
func ReadImage(path string) (*Asset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PersistError{Op: "ReadImage", Path: path, Err: err}
	}
	if info.Size() > MaxImageBytes {
		return nil, &PersistError{Op: "ReadImage", Path: path, Err: ErrImageTooLarge}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &PersistError{Op: "ReadImage", Path: path, Err: err}
	}
	if len(data) > MaxImageBytes {
		return nil, &PersistError{Op: "ReadImage", Path: path, Err: ErrImageTooLarge}
	}
	if len(data) == 0 {
		return nil, &PersistError{Op: "ReadImage", Path: path, Err: errors.New("image file is empty")}
	}
	return &Asset{Data: data, MIME: http.DetectContentType(data)}, nil
}
