package core

import (
	"context"
	"io"
)

// ObjectStorage is any blob store that can hold uploaded file content.
// Paths are opaque keys; PublicURL must be a pure function of the path
// (and the store's bucket/endpoint), not a stored value.
type ObjectStorage interface {
	Put(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	PublicURL(path string) string
	Delete(ctx context.Context, path string) error
}
