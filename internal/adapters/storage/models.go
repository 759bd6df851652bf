package storage

import (
	"time"

	"github.com/renato0307/shed/internal/domain"
)

// SchemaVersionModel records each applied schema migration
type SchemaVersionModel struct {
	AppliedAt time.Time
	Version   int `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for GORM
func (SchemaVersionModel) TableName() string { return "schema_versions" }

// IDSequenceModel is the persisted id counter of a collection
type IDSequenceModel struct {
	Collection string `gorm:"primaryKey"`
	NextID     int64  `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM
func (IDSequenceModel) TableName() string { return "id_sequences" }

// RecordingModel is the GORM model for the recordings collection
type RecordingModel struct {
	Artist      string `gorm:"not null;default:''"`
	CreatedAt   time.Time
	Description string `gorm:"not null;default:''"`
	FileRef     string `gorm:"not null;default:''"`
	Filename    string `gorm:"not null;default:''"`
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	StandardID  string `gorm:"not null;index:idx_recordings_standard_id"`
	Type        string `gorm:"not null;index:idx_recordings_type"`
	URL         string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (RecordingModel) TableName() string { return "recordings" }

// NoteModel is the GORM model for the notes collection
type NoteModel struct {
	Content    string    `gorm:"not null;default:''"`
	Date       time.Time `gorm:"not null;index:idx_notes_date"`
	ID         int64     `gorm:"primaryKey;autoIncrement:false"`
	StandardID string    `gorm:"not null;index:idx_notes_standard_id"`
}

// TableName specifies the table name for GORM
func (NoteModel) TableName() string { return "notes" }

// ProgressModel is the GORM model for the progress collection
type ProgressModel struct {
	Checklist            map[string]bool           `gorm:"serializer:json"`
	CompletionPercentage int                       `gorm:"not null;default:0"`
	LastPracticed        *time.Time                `gorm:"default:null"`
	Notes                string                    `gorm:"not null;default:''"`
	Recordings           domain.ProgressRecordings `gorm:"serializer:json"`
	StandardID           string                    `gorm:"primaryKey"`
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (ProgressModel) TableName() string { return "progress" }
