// Package storage holds the byte-level backends behind the snapshot stores.
// A backend reads and replaces one whole document; it never patches it.
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Read when nothing has been written yet.
var ErrNotExist = errors.New("storage: document does not exist")

type Backend interface {
	// Read returns the full document or ErrNotExist.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the document. A crash mid-write must leave either the
	// old or the new content readable, never a mix.
	Write(ctx context.Context, data []byte) error
	// Location names the document for logs and error messages.
	Location() string
}
