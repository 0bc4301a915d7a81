package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
// Uploaded resumes are spooled through a store for the lifetime of a request,
// so Remove must be safe to call once the pipeline is done with the object.
type ObjectStore interface {
	Save(ctx context.Context, userID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Remove(ctx context.Context, storageKey string) error
}
