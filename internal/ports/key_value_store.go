package ports

// KeyValueStore persists small JSON-serializable values under string keys
type KeyValueStore interface {
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error

	// Get decodes the value stored under key into dst.
	// Returns false when the key is absent or unreadable.
	Get(key string, dst any) bool

	// Set stores value under key, replacing any previous value
	Set(key string, value any) error
}
