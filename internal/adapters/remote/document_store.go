package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/shed/internal/adapters/storage"
	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

// Supported remote drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DocumentStore keeps user and progress documents in a SQL database.
// Writes merge into existing documents; nothing is retried.
type DocumentStore struct {
	credentials ports.CredentialSource
	db          *gorm.DB
	now         func() time.Time
}

// Verify interface compliance at compile time
var _ ports.RemoteStore = (*DocumentStore)(nil)

// Open connects to the remote database and ensures its tables exist
func Open(ctx context.Context, driver, dsn string, credentials ports.CredentialSource) (*DocumentStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported remote driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 storage.NewGormLogger(),
		NowFunc:                func() time.Time { return time.Now().UTC() },
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to %s: %w", domain.ErrNetwork, driver, err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&UserModel{}, &ProgressModel{}); err != nil {
		return nil, fmt.Errorf("%w: failed to migrate remote schema: %w", domain.ErrNetwork, err)
	}

	logging.Logger.Info("Remote store connected", "driver", driver)
	return New(db, credentials), nil
}

// New wraps an existing connection. Tables must already exist.
func New(db *gorm.DB, credentials ports.CredentialSource) *DocumentStore {
	return &DocumentStore{
		credentials: credentials,
		db:          db,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Close closes the database connection
func (s *DocumentStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateUserRecord merge-writes the user document and stamps createdAt when new
func (s *DocumentStore) CreateUserRecord(ctx context.Context, userID string, fields ports.UserFields) error {
	return s.mergeUser(ctx, "create user record", userID, fields, true)
}

// SaveUserFields merge-writes the given user fields
func (s *DocumentStore) SaveUserFields(ctx context.Context, userID string, fields ports.UserFields) error {
	return s.mergeUser(ctx, "save user fields", userID, fields, false)
}

func (s *DocumentStore) mergeUser(ctx context.Context, op, userID string, fields ports.UserFields, stampCreated bool) error {
	if err := s.authorize(op, userID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := s.now()

		var m UserModel
		err := tx.Where("user_id = ?", userID).First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			m = UserModel{UserID: userID, UpdatedAt: now}
			applyUserFields(&m, fields)
			if stampCreated {
				m.CreatedAt = &now
			}
			return tx.Create(&m).Error
		}
		if err != nil {
			return err
		}

		columns := applyUserFields(&m, fields)
		m.UpdatedAt = now
		columns = append(columns, "updated_at")
		if stampCreated && m.CreatedAt == nil {
			m.CreatedAt = &now
			columns = append(columns, "created_at")
		}
		return tx.Model(&m).Select(columns).Updates(&m).Error
	})
	if err != nil {
		return s.fail(op, userID, err)
	}

	logging.Logger.Debug("Remote user document written", "op", op, "user_id", userID)
	return nil
}

// GetUser returns nil when the document does not exist
func (s *DocumentStore) GetUser(ctx context.Context, userID string) (*ports.RemoteUser, error) {
	const op = "get user"
	if err := s.authorize(op, userID); err != nil {
		return nil, err
	}

	var m UserModel
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.fail(op, userID, err)
	}

	u := userModelToPort(m)
	return &u, nil
}

// SaveProgress merges the patch into the standard's progress document,
// creating it when absent. Checklist items merge key by key and completion
// is recomputed from the merged checklist.
func (s *DocumentStore) SaveProgress(ctx context.Context, userID, standardID string, patch domain.ProgressPatch) error {
	const op = "save progress"
	if err := s.authorize(op, userID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec := domain.NewProgressRecord(standardID)

		var existing ProgressModel
		err := tx.Where("user_id = ? AND standard_id = ?", userID, standardID).First(&existing).Error
		switch {
		case err == nil:
			rec = progressModelToRecord(existing)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		m := recordToProgressModel(userID, rec.Merge(patch), s.now())
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&m).Error
	})
	if err != nil {
		return s.fail(op, userID, err)
	}

	logging.Logger.Debug("Remote progress written", "user_id", userID, "standard_id", standardID)
	return nil
}

// GetProgress returns nil when the document does not exist
func (s *DocumentStore) GetProgress(ctx context.Context, userID, standardID string) (*ports.RemoteProgress, error) {
	const op = "get progress"
	if err := s.authorize(op, userID); err != nil {
		return nil, err
	}

	var m ProgressModel
	err := s.db.WithContext(ctx).Where("user_id = ? AND standard_id = ?", userID, standardID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, s.fail(op, userID, err)
	}

	return &ports.RemoteProgress{Record: progressModelToRecord(m), UpdatedAt: m.UpdatedAt.UTC()}, nil
}

// GetAllProgress returns every progress document of the user keyed by standard id
func (s *DocumentStore) GetAllProgress(ctx context.Context, userID string) (map[string]ports.RemoteProgress, error) {
	const op = "get all progress"
	if err := s.authorize(op, userID); err != nil {
		return nil, err
	}

	var models []ProgressModel
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("standard_id").Find(&models).Error; err != nil {
		return nil, s.fail(op, userID, err)
	}

	out := make(map[string]ports.RemoteProgress, len(models))
	for _, m := range models {
		out[m.StandardID] = ports.RemoteProgress{Record: progressModelToRecord(m), UpdatedAt: m.UpdatedAt.UTC()}
	}
	return out, nil
}

// DeleteProgress removes one progress document. Deleting an absent document is not an error.
func (s *DocumentStore) DeleteProgress(ctx context.Context, userID, standardID string) error {
	const op = "delete progress"
	if err := s.authorize(op, userID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Where("user_id = ? AND standard_id = ?", userID, standardID).Delete(&ProgressModel{}).Error
	if err != nil {
		return s.fail(op, userID, err)
	}
	return nil
}

func (s *DocumentStore) authorize(op, userID string) error {
	if userID == "" || s.credentials == nil || !s.credentials.HoldsCredentials(userID) {
		logging.Logger.Warn("Remote operation rejected", "op", op, "user_id", userID)
		return &domain.RemoteError{Op: op, Kind: domain.ErrAuth}
	}
	return nil
}

func (s *DocumentStore) fail(op, userID string, err error) error {
	logging.Logger.Error("Remote operation failed", "op", op, "user_id", userID, "error", err)
	return &domain.RemoteError{Op: op, Kind: domain.ErrNetwork, Err: err}
}
