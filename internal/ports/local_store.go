package ports

import (
	"context"

	"github.com/renato0307/shed/internal/domain"
)

// Collection is one named record set in the local structured store.
// K is the primary key type.
type Collection[T any, K comparable] interface {
	// Add inserts a new record. Fails if the key already exists.
	// Collections with generated keys return the record with its key set.
	Add(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, key K) error
	// Get returns nil without error when the key is absent
	Get(ctx context.Context, key K) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	// GetByIndex returns every record whose indexed field equals value
	GetByIndex(ctx context.Context, index string, value string) ([]T, error)
	// Put inserts or replaces the record with the same key
	Put(ctx context.Context, item T) (T, error)
}

// RecordingCollection holds recordings keyed by a generated id
type RecordingCollection = Collection[domain.Recording, int64]

// NoteCollection holds notes keyed by a generated id
type NoteCollection = Collection[domain.Note, int64]

// ProgressCollection holds one progress record per standard
type ProgressCollection = Collection[domain.ProgressRecord, string]

// ProgressReader reads the full progress collection
type ProgressReader interface {
	GetAll(ctx context.Context) ([]domain.ProgressRecord, error)
}

// LocalStore is the local structured store with its collections
type LocalStore interface {
	Close() error
	Notes() NoteCollection
	Progress() ProgressCollection
	Recordings() RecordingCollection
}
