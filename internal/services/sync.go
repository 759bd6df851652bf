package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

// SyncService is the boundary the UI calls. Interactive writes go to the
// local tiers only; the remote store is written by migration.
type SyncService struct {
	group    singleflight.Group
	kv       ports.KeyValueStore
	local    ports.LocalStore
	migrated map[string]bool
	migrator *MigrationCoordinator
	mu       sync.Mutex
	remote   ports.RemoteStore
	state    *StateStore
}

// NewSyncService creates a new SyncService
func NewSyncService(
	local ports.LocalStore,
	kv ports.KeyValueStore,
	remote ports.RemoteStore,
	state *StateStore,
) *SyncService {
	return &SyncService{
		kv:       kv,
		local:    local,
		migrated: make(map[string]bool),
		migrator: NewMigrationCoordinator(kv, local.Progress(), remote),
		remote:   remote,
		state:    state,
	}
}

// State returns the committed AppState
func (s *SyncService) State() domain.AppState {
	return s.state.State()
}

// Subscribe registers a listener notified after every committed change
func (s *SyncService) Subscribe(listener StateListener) func() {
	return s.state.Subscribe(listener)
}

// LoadAll hydrates preferences, schedule and progress from the local tiers.
// A local store failure is kept in AppState.Error; preferences and schedule still load.
func (s *SyncService) LoadAll(ctx context.Context) domain.AppState {
	logging.Logger.Info("Loading local state")

	cmd := domain.LoadCompleted{
		Preferences: LoadPreferences(s.kv),
		Progress:    map[string]domain.ProgressRecord{},
		Schedule:    LoadSchedule(s.kv),
	}

	records, err := s.local.Progress().GetAll(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load progress", "error", err)
		if errors.Is(err, domain.ErrStorageUnavailable) {
			cmd.Error = domain.ErrStorageUnavailable.Error()
		} else {
			cmd.Error = err.Error()
		}
	}
	for _, rec := range records {
		cmd.Progress[rec.StandardID] = rec
	}

	logging.Logger.Debug("Local state loaded", "progress", len(cmd.Progress), "schedule_days", len(cmd.Schedule))
	return s.state.Dispatch(cmd)
}

// UpdateProgress merges patch into the standard's local progress record
func (s *SyncService) UpdateProgress(ctx context.Context, standardID string, patch domain.ProgressPatch) (domain.ProgressRecord, error) {
	logging.Logger.Info("Updating progress", "standard_id", standardID)

	if !domain.IsKnownStandard(standardID) {
		return domain.ProgressRecord{}, fmt.Errorf("%w: %s", domain.ErrUnknownStandard, standardID)
	}

	current, err := s.local.Progress().Get(ctx, standardID)
	if err != nil {
		logging.Logger.Error("Failed to read progress", "standard_id", standardID, "error", err)
		return domain.ProgressRecord{}, fmt.Errorf("failed to read progress: %w", err)
	}

	rec := domain.NewProgressRecord(standardID)
	if current != nil {
		rec = *current
	}
	rec = rec.Apply(patch)

	saved, err := s.local.Progress().Put(ctx, rec)
	if err != nil {
		logging.Logger.Error("Failed to save progress", "standard_id", standardID, "error", err)
		return domain.ProgressRecord{}, fmt.Errorf("failed to save progress: %w", err)
	}

	s.state.Dispatch(domain.ProgressCommitted{Record: saved})
	logging.Logger.Debug("Progress saved", "standard_id", standardID, "completion", saved.CompletionPercentage)
	return saved, nil
}

// UpdatePreferences applies patch to the stored preferences
func (s *SyncService) UpdatePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.Preferences, error) {
	logging.Logger.Info("Updating preferences")

	if err := patch.Validate(); err != nil {
		return domain.Preferences{}, err
	}

	prefs := LoadPreferences(s.kv).Apply(patch)
	if err := s.kv.Set(PreferencesKey, prefs); err != nil {
		logging.Logger.Error("Failed to save preferences", "error", err)
		return domain.Preferences{}, err
	}

	s.state.Dispatch(domain.PreferencesCommitted{Preferences: prefs})
	return prefs, nil
}

// UpdateSchedule replaces the whole session list of a date-key.
// Sessions without an id get one; an empty list removes the date-key.
func (s *SyncService) UpdateSchedule(ctx context.Context, dateKey string, sessions []domain.ScheduleSession) ([]domain.ScheduleSession, error) {
	logging.Logger.Info("Updating schedule", "date", dateKey, "sessions", len(sessions))

	if _, err := domain.ParseDateKey(dateKey); err != nil {
		return nil, err
	}
	if err := domain.ValidateSessions(sessions); err != nil {
		return nil, err
	}

	list := make([]domain.ScheduleSession, len(sessions))
	for i, session := range sessions {
		if session.ID == "" {
			session.ID = uuid.NewString()
		}
		list[i] = session
	}

	schedule := LoadSchedule(s.kv).With(dateKey, list)
	if err := s.kv.Set(ScheduleKey, schedule); err != nil {
		logging.Logger.Error("Failed to save schedule", "date", dateKey, "error", err)
		return nil, err
	}

	s.state.Dispatch(domain.ScheduleDayCommitted{DateKey: dateKey, Sessions: list})
	return list, nil
}

// Migrate copies local data to the remote store. Concurrent calls for the
// same user share one run.
func (s *SyncService) Migrate(ctx context.Context, userID string) MigrationReport {
	v, _, _ := s.group.Do(userID, func() (any, error) {
		return s.migrator.Migrate(ctx, userID), nil
	})
	return v.(MigrationReport)
}

// OnIdentityTransition reacts to identity changes. It returns the migration
// report when the transition triggered one, nil otherwise.
func (s *SyncService) OnIdentityTransition(ctx context.Context, event domain.IdentityEvent) *MigrationReport {
	logging.Logger.Info("Identity transition", "kind", event.Kind, "created", event.Created)

	switch event.Kind {
	case domain.IdentityAnonymousEstablished:
		if event.Identity == nil {
			return nil
		}
		userID := event.Identity.UserID
		if !s.claimMigration(userID) {
			logging.Logger.Debug("Migration already ran for this transition", "user_id", userID)
			return nil
		}

		prefs := domain.DefaultPreferences()
		err := s.remote.CreateUserRecord(ctx, userID, ports.UserFields{
			DisplayName: ptr(domain.AnonymousDisplayName),
			IsAnonymous: ptr(true),
			Preferences: &prefs,
			Schedule:    domain.Schedule{},
		})
		if err != nil {
			logging.Logger.Warn("Failed to create anonymous user record", "user_id", userID, "error", err)
		}

		report := s.Migrate(ctx, userID)
		return &report

	case domain.IdentityAuthenticated:
		// Only a freshly created account gets a user record; no migration runs here
		if event.Identity == nil || !event.Created {
			return nil
		}
		prefs := domain.DefaultPreferences()
		err := s.remote.CreateUserRecord(ctx, event.Identity.UserID, ports.UserFields{
			DisplayName: ptr(event.Identity.DisplayName),
			Email:       ptr(event.Identity.Email),
			Preferences: &prefs,
			Schedule:    domain.Schedule{},
		})
		if err != nil {
			logging.Logger.Warn("Failed to create user record", "user_id", event.Identity.UserID, "error", err)
		}
	}

	return nil
}

// claimMigration marks userID as migrated and reports whether this call won
func (s *SyncService) claimMigration(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.migrated[userID] {
		return false
	}
	s.migrated[userID] = true
	return true
}

func ptr[T any](v T) *T { return &v }
