package storage

import (
	"context"
	"time"
)

// DocumentStore defines the contract for binary document storage. Uploads are
// addressed by an object path; retrieval happens through issued URLs.
type DocumentStore interface {
	// Upload writes data under the given object path and returns the stored
	// object's permanent identifier.
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
	// Delete removes the object stored under the given identifier.
	Delete(ctx context.Context, objectID string) error
	// GetRetrievalURL issues a URL under which the object can be fetched.
	// A zero expiry requests a non-expiring public URL where the backend
	// supports one.
	GetRetrievalURL(ctx context.Context, objectID string, expires time.Duration) (string, error)
}
