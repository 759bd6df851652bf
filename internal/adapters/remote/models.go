package remote

import (
	"time"

	"github.com/renato0307/shed/internal/domain"
)

// UserModel is the GORM model for user documents
type UserModel struct {
	CreatedAt   *time.Time          `gorm:"autoCreateTime:false"`
	DisplayName string              `gorm:"not null;default:''"`
	Email       string              `gorm:"not null;default:''"`
	IsAnonymous bool                `gorm:"not null;default:false"`
	Preferences *domain.Preferences `gorm:"serializer:json;type:text"`
	Schedule    domain.Schedule     `gorm:"serializer:json;type:text"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime:false"`
	UserID      string              `gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string { return "remote_users" }

// ProgressModel is the GORM model for per-standard progress documents
type ProgressModel struct {
	Checklist            map[string]bool           `gorm:"serializer:json;type:text"`
	CompletionPercentage int                       `gorm:"not null;default:0"`
	LastPracticed        *time.Time                `gorm:"default:null"`
	Notes                string                    `gorm:"not null;default:''"`
	Recordings           domain.ProgressRecordings `gorm:"serializer:json;type:text"`
	StandardID           string                    `gorm:"primaryKey"`
	UpdatedAt            time.Time                 `gorm:"autoUpdateTime:false"`
	UserID               string                    `gorm:"primaryKey;index:idx_remote_progress_user"`
}

// TableName specifies the table name for GORM
func (ProgressModel) TableName() string { return "remote_progress" }
