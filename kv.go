package fixitquick

import "context"

// KV is a raw string key-value store, the persistence primitive underneath
// the versioned storage accessor. Implementations live in sqlite/ and mock/.
type KV interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key that starts with prefix. An empty
	// prefix returns all keys.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
