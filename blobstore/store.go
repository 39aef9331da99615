// Package blobstore abstracts the storage backends that vector
// snapshots are written to and restored from.
//
// A Store is a flat namespace of immutable named blobs. Backends ship
// for memory (tests), the local filesystem, AWS S3, and MinIO; the
// Throttled wrapper adds byte-rate and concurrency limits in front of
// any of them.
//
// Stores are safe for concurrent use.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error satisfying
// errors.Is(err, ErrNotFound). The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// Store reads and writes named blobs.
type Store interface {
	// Put writes the blob atomically: a concurrent Open never observes
	// a partial write.
	Put(ctx context.Context, name string, r io.Reader) error
	// Open opens the named blob for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Delete removes the named blob. Deleting a missing blob is not an
	// error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Mappable is an optional interface for readers returned by Open that
// can expose their contents without copying. The returned slice is
// valid until the reader is closed.
type Mappable interface {
	Bytes() ([]byte, error)
}
