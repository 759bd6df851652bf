package storage

import (
	"context"
	"fmt"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/ports"
)

// Unavailable stands in for a store that failed to open.
// Every collection operation fails with domain.ErrStorageUnavailable.
func Unavailable(cause error) ports.LocalStore {
	return unavailableStore{cause: cause}
}

type unavailableStore struct {
	cause error
}

func (u unavailableStore) Close() error { return nil }

func (u unavailableStore) Notes() ports.NoteCollection {
	return unavailableCollection[domain.Note, int64]{cause: u.cause}
}

func (u unavailableStore) Progress() ports.ProgressCollection {
	return unavailableCollection[domain.ProgressRecord, string]{cause: u.cause}
}

func (u unavailableStore) Recordings() ports.RecordingCollection {
	return unavailableCollection[domain.Recording, int64]{cause: u.cause}
}

type unavailableCollection[T any, K comparable] struct {
	cause error
}

func (u unavailableCollection[T, K]) err() error {
	if u.cause == nil {
		return domain.ErrStorageUnavailable
	}
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, u.cause)
}

func (u unavailableCollection[T, K]) Add(context.Context, T) (T, error) {
	var zero T
	return zero, u.err()
}

func (u unavailableCollection[T, K]) Delete(context.Context, K) error { return u.err() }

func (u unavailableCollection[T, K]) Get(context.Context, K) (*T, error) { return nil, u.err() }

func (u unavailableCollection[T, K]) GetAll(context.Context) ([]T, error) { return nil, u.err() }

func (u unavailableCollection[T, K]) GetByIndex(context.Context, string, string) ([]T, error) {
	return nil, u.err()
}

func (u unavailableCollection[T, K]) Put(context.Context, T) (T, error) {
	var zero T
	return zero, u.err()
}
