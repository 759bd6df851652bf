package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/shed/internal/domain"
)

// keySequence assigns keys from the persisted id_sequences counter
type keySequence[T any] struct {
	get func(T) int64
	set func(T, int64) T
}

// indexFilter narrows a query to the rows whose indexed field matches value
type indexFilter func(tx *gorm.DB, value string) (*gorm.DB, error)

// equalTo matches a text column exactly
func equalTo(column string) indexFilter {
	return func(tx *gorm.DB, value string) (*gorm.DB, error) {
		return tx.Where(column+" = ?", value), nil
	}
}

// onDate matches a timestamp column. A date-key selects the whole UTC day;
// an RFC3339 value selects that instant.
func onDate(column string) indexFilter {
	return func(tx *gorm.DB, value string) (*gorm.DB, error) {
		if day, err := time.Parse(domain.DateKeyLayout, value); err == nil {
			return tx.Where(column+" >= ? AND "+column+" < ?", day, day.AddDate(0, 0, 1)), nil
		}
		if instant, err := time.Parse(time.RFC3339Nano, value); err == nil {
			return tx.Where(column+" = ?", instant.UTC()), nil
		}
		return nil, &domain.ValidationError{Field: "date", Reason: fmt.Sprintf("%q is neither YYYY-MM-DD nor RFC3339", value)}
	}
}

// collection maps one table onto ports.Collection.
// Each operation runs in its own transaction, serialized by mu.
type collection[T any, K comparable, M any] struct {
	db       *gorm.DB
	mu       sync.Mutex
	name     string
	key      string
	indexes  map[string]indexFilter
	keyOf    func(T) K
	sequence *keySequence[T]
	toDomain func(M) T
	toModel  func(T) M
}

// Add inserts item. Sequenced collections always assign a fresh key.
func (c *collection[T, K, M]) Add(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out T
	err := withRetry(ctx, func() error {
		return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			rec := item
			if c.sequence != nil {
				id, err := nextID(tx, c.name)
				if err != nil {
					return err
				}
				rec = c.sequence.set(rec, id)
			}

			m := c.toModel(rec)
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			out = c.toDomain(m)
			return nil
		})
	})
	if err != nil {
		return out, fmt.Errorf("failed to add to %s: %w", c.name, err)
	}
	return out, nil
}

// Put inserts or replaces item. A zero key on a sequenced collection behaves like Add.
func (c *collection[T, K, M]) Put(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out T
	err := withRetry(ctx, func() error {
		return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			rec := item
			if c.sequence != nil {
				id := c.sequence.get(rec)
				if id == 0 {
					next, err := nextID(tx, c.name)
					if err != nil {
						return err
					}
					rec = c.sequence.set(rec, next)
				} else if err := advanceID(tx, c.name, id); err != nil {
					return err
				}
			}

			m := c.toModel(rec)
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error; err != nil {
				return err
			}
			out = c.toDomain(m)
			return nil
		})
	})
	if err != nil {
		return out, fmt.Errorf("failed to put into %s: %w", c.name, err)
	}
	return out, nil
}

// Get returns nil when the key is absent
func (c *collection[T, K, M]) Get(ctx context.Context, key K) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var m M
	err := withRetry(ctx, func() error {
		return c.db.WithContext(ctx).Where(c.key+" = ?", key).First(&m).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from %s: %w", c.name, err)
	}

	out := c.toDomain(m)
	return &out, nil
}

func (c *collection[T, K, M]) GetAll(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.find(ctx, func(tx *gorm.DB) *gorm.DB { return tx })
}

// GetByIndex returns records whose indexed field matches value
func (c *collection[T, K, M]) GetByIndex(ctx context.Context, index string, value string) ([]T, error) {
	filter, ok := c.indexes[index]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no index %q", domain.ErrUnknownIndex, c.name, index)
	}

	// Reject malformed values before taking the lock
	if _, err := filter(c.db, value); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.find(ctx, func(tx *gorm.DB) *gorm.DB {
		scoped, _ := filter(tx, value)
		return scoped
	})
}

// Delete removes the record. Deleting an absent key is not an error.
func (c *collection[T, K, M]) Delete(ctx context.Context, key K) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := withRetry(ctx, func() error {
		return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Where(c.key+" = ?", key).Delete(new(M)).Error
		})
	})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", c.name, err)
	}
	return nil
}

func (c *collection[T, K, M]) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]T, error) {
	var models []M
	err := withRetry(ctx, func() error {
		return scope(c.db.WithContext(ctx)).Order(c.key).Find(&models).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.name, err)
	}

	out := make([]T, 0, len(models))
	for _, m := range models {
		out = append(out, c.toDomain(m))
	}
	return out, nil
}

// nextID hands out the collection's next key and advances the counter
func nextID(tx *gorm.DB, collection string) (int64, error) {
	seq := IDSequenceModel{Collection: collection, NextID: 1}
	if err := tx.Where(IDSequenceModel{Collection: collection}).FirstOrCreate(&seq).Error; err != nil {
		return 0, fmt.Errorf("failed to read id sequence: %w", err)
	}

	id := seq.NextID
	if err := tx.Model(&IDSequenceModel{}).Where("collection = ?", collection).Update("next_id", id+1).Error; err != nil {
		return 0, fmt.Errorf("failed to advance id sequence: %w", err)
	}
	return id, nil
}

// advanceID moves the counter past an explicitly supplied key
func advanceID(tx *gorm.DB, collection string, used int64) error {
	seq := IDSequenceModel{Collection: collection, NextID: 1}
	if err := tx.Where(IDSequenceModel{Collection: collection}).FirstOrCreate(&seq).Error; err != nil {
		return fmt.Errorf("failed to read id sequence: %w", err)
	}
	if used < seq.NextID {
		return nil
	}
	return tx.Model(&IDSequenceModel{}).Where("collection = ?", collection).Update("next_id", used+1).Error
}
