package ports

import (
	"context"
	"time"

	"github.com/renato0307/shed/internal/domain"
)

// UserFields is a partial user document. Nil fields are left untouched on write.
type UserFields struct {
	DisplayName *string
	Email       *string
	IsAnonymous *bool
	Preferences *domain.Preferences
	Schedule    domain.Schedule
}

// RemoteUser is the user document as stored remotely
type RemoteUser struct {
	CreatedAt   time.Time
	DisplayName string
	Email       string
	IsAnonymous bool
	Preferences *domain.Preferences
	Schedule    domain.Schedule
	UpdatedAt   time.Time
	UserID      string
}

// RemoteProgress is a per-standard progress document as stored remotely
type RemoteProgress struct {
	Record    domain.ProgressRecord
	UpdatedAt time.Time
}

// RemoteReader reads user and progress documents
type RemoteReader interface {
	GetAllProgress(ctx context.Context, userID string) (map[string]RemoteProgress, error)
	// GetProgress returns nil without error when the document does not exist
	GetProgress(ctx context.Context, userID, standardID string) (*RemoteProgress, error)
	// GetUser returns nil without error when the document does not exist
	GetUser(ctx context.Context, userID string) (*RemoteUser, error)
}

// RemoteWriter merge-writes user and progress documents
type RemoteWriter interface {
	// CreateUserRecord merge-writes the user document, setting createdAt only when it is new
	CreateUserRecord(ctx context.Context, userID string, fields UserFields) error
	DeleteProgress(ctx context.Context, userID, standardID string) error
	SaveProgress(ctx context.Context, userID, standardID string, patch domain.ProgressPatch) error
	SaveUserFields(ctx context.Context, userID string, fields UserFields) error
}

// RemoteStore is the composite interface.
// Failures are *domain.RemoteError matching domain.ErrNetwork or domain.ErrAuth.
type RemoteStore interface {
	RemoteReader
	RemoteWriter
}

// CredentialSource reports whether the device currently holds credentials for a user
type CredentialSource interface {
	HoldsCredentials(userID string) bool
}
