package ports

import "context"

// DocumentStore is the keyed binary storage holding attached document bytes.
// Keys are namespaced per order and are unique and immutable once written;
// the store never overwrites an existing key in this system.
type DocumentStore interface {
	// Put writes the file bytes under the given storage key.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get reads the file bytes stored under the given storage key.
	Get(ctx context.Context, key string) ([]byte, error)
}
