package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/renato0307/shed/internal/logging"
)

// schemaMigration upgrades the schema by one version.
// Steps must be idempotent and must never drop or truncate data.
type schemaMigration struct {
	apply   func(tx *gorm.DB) error
	version int
}

var schemaMigrations = []schemaMigration{
	{version: 1, apply: createInitialSchema},
}

func latestSchemaVersion() int {
	return schemaMigrations[len(schemaMigrations)-1].version
}

// migrate applies every migration newer than the stored version, in order
func migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME
		)
	`).Error; err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	var current int
	if err := db.Model(&SchemaVersionModel{}).Select("COALESCE(MAX(version), 0)").Scan(&current).Error; err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	latest := latestSchemaVersion()
	if current > latest {
		return fmt.Errorf("database schema version %d is newer than supported version %d", current, latest)
	}

	for _, m := range schemaMigrations {
		if m.version <= current {
			continue
		}

		logging.Logger.Info("Applying schema migration", "from", current, "to", m.version)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.apply(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaVersionModel{Version: m.version, AppliedAt: utcNow()}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to apply schema version %d: %w", m.version, err)
		}
		current = m.version
	}

	return nil
}

func createInitialSchema(tx *gorm.DB) error {
	migrator := tx.Migrator()

	if !migrator.HasTable(&RecordingModel{}) {
		if err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS recordings (
				id INTEGER PRIMARY KEY,
				standard_id TEXT NOT NULL,
				type TEXT NOT NULL CHECK (type IN ('reference','personal')),
				artist TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT '',
				filename TEXT NOT NULL DEFAULT '',
				url TEXT NOT NULL DEFAULT '',
				file_ref TEXT NOT NULL DEFAULT '',
				created_at DATETIME
			)
		`).Error; err != nil {
			return fmt.Errorf("failed to create recordings table: %w", err)
		}
	}

	if !migrator.HasTable(&NoteModel{}) {
		if err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS notes (
				id INTEGER PRIMARY KEY,
				standard_id TEXT NOT NULL,
				content TEXT NOT NULL DEFAULT '',
				date DATETIME NOT NULL
			)
		`).Error; err != nil {
			return fmt.Errorf("failed to create notes table: %w", err)
		}
	}

	if !migrator.HasTable(&ProgressModel{}) {
		if err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS progress (
				standard_id TEXT PRIMARY KEY,
				checklist TEXT,
				completion_percentage INTEGER NOT NULL DEFAULT 0,
				recordings TEXT,
				notes TEXT NOT NULL DEFAULT '',
				last_practiced DATETIME,
				updated_at DATETIME
			)
		`).Error; err != nil {
			return fmt.Errorf("failed to create progress table: %w", err)
		}
	}

	if !migrator.HasTable(&IDSequenceModel{}) {
		if err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS id_sequences (
				collection TEXT PRIMARY KEY,
				next_id INTEGER NOT NULL DEFAULT 1
			)
		`).Error; err != nil {
			return fmt.Errorf("failed to create id_sequences table: %w", err)
		}
	}

	for _, stmt := range []string{
		"CREATE INDEX IF NOT EXISTS idx_recordings_standard_id ON recordings(standard_id)",
		"CREATE INDEX IF NOT EXISTS idx_recordings_type ON recordings(type)",
		"CREATE INDEX IF NOT EXISTS idx_notes_standard_id ON notes(standard_id)",
		"CREATE INDEX IF NOT EXISTS idx_notes_date ON notes(date)",
	} {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
