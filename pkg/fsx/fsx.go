package fsx

import (
	"context"
	"io"
)

// FileSystem abstracts blob storage for generated artifacts.
type FileSystem interface {
	// WriteFile stores data under the given path, overwriting any previous
	// object.
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFileStream opens the object for reading. The caller closes it.
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)

	// DeleteFile removes the object. Deleting a missing object is not an
	// error.
	DeleteFile(ctx context.Context, path string) error

	// Exists reports whether the object is present.
	Exists(ctx context.Context, path string) (bool, error)

	// Join builds a storage path from segments using the backend separator.
	Join(segments ...string) string
}
