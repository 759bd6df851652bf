package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

const maxRetries = 3

// Store is the SQLite-backed local structured store
type Store struct {
	db         *gorm.DB
	notes      *collection[domain.Note, int64, NoteModel]
	progress   *collection[domain.ProgressRecord, string, ProgressModel]
	recordings *collection[domain.Recording, int64, RecordingModel]
}

// Verify interface compliance at compile time
var _ ports.LocalStore = (*Store)(nil)

// Open opens (creating if needed) the database at dbPath and brings its schema
// up to date. Any failure is wrapped in domain.ErrStorageUnavailable.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	store, err := open(ctx, dbPath)
	if err != nil {
		logging.Logger.Error("Local storage unavailable", "path", dbPath, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return store, nil
}

func open(ctx context.Context, dbPath string) (*Store, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     utcNow,
		Logger:      NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets a second process read while another writes
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if err := db.WithContext(ctx).Exec(pragma).Error; err != nil {
			closeDB(db)
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := migrate(ctx, db); err != nil {
		closeDB(db)
		return nil, err
	}

	logging.Logger.Info("Local storage opened", "path", dbPath, "schema_version", latestSchemaVersion())

	return &Store{
		db: db,
		notes: &collection[domain.Note, int64, NoteModel]{
			db:       db,
			name:     "notes",
			key:      "id",
			indexes:  map[string]indexFilter{"standardId": equalTo("standard_id"), "date": onDate("date")},
			keyOf:    noteKey,
			sequence: &keySequence[domain.Note]{get: noteKey, set: withNoteKey},
			toDomain: noteModelToDomain,
			toModel:  noteToModel,
		},
		progress: &collection[domain.ProgressRecord, string, ProgressModel]{
			db:       db,
			name:     "progress",
			key:      "standard_id",
			indexes:  map[string]indexFilter{"standardId": equalTo("standard_id")},
			keyOf:    progressKey,
			toDomain: progressModelToDomain,
			toModel:  progressToModel,
		},
		recordings: &collection[domain.Recording, int64, RecordingModel]{
			db:       db,
			name:     "recordings",
			key:      "id",
			indexes:  map[string]indexFilter{"standardId": equalTo("standard_id"), "type": equalTo("type")},
			keyOf:    recordingKey,
			sequence: &keySequence[domain.Recording]{get: recordingKey, set: withRecordingKey},
			toDomain: recordingModelToDomain,
			toModel:  recordingToModel,
		},
	}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Notes returns the notes collection
func (s *Store) Notes() ports.NoteCollection { return s.notes }

// Progress returns the progress collection
func (s *Store) Progress() ports.ProgressCollection { return s.progress }

// Recordings returns the recordings collection
func (s *Store) Recordings() ports.RecordingCollection { return s.recordings }

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

// withRetry retries fn while SQLite reports the database busy or locked
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if !errors.As(err, &sqliteErr) || (sqliteErr.Code != sqlite3.ErrBusy && sqliteErr.Code != sqlite3.ErrLocked) {
			return err
		}

		logging.Logger.Debug("Database busy, retrying", "attempt", i+1, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Millisecond * time.Duration(50*(i+1))):
		}
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
