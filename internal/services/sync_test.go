package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shed/internal/adapters/remote"
	"github.com/renato0307/shed/internal/adapters/storage"
	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/ports"
	portsmocks "github.com/renato0307/shed/internal/ports/mocks"
)

func TestLoadAll_DefaultsOnEmptyStores(t *testing.T) {
	stack := newTestStack(t, remote.Offline{})

	state := stack.sync.LoadAll(context.Background())

	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.Empty(t, state.Progress)
	assert.Empty(t, state.Schedule)
	assert.Equal(t, domain.Preferences{
		AutoSave:                 true,
		DefaultPracticeVariation: "basic",
		Notifications:            true,
		Theme:                    "light",
		ViewMode:                 "grid",
	}, state.Preferences)
}

func TestLoadAll_LocalStoreUnavailable(t *testing.T) {
	stack := newTestStack(t, remote.Offline{})
	dark := domain.ThemeDark
	_, err := stack.sync.UpdatePreferences(context.Background(), domain.PreferencesPatch{Theme: &dark})
	require.NoError(t, err)

	sync := NewSyncService(storage.Unavailable(nil), stack.kv, remote.Offline{}, NewStateStore())
	state := sync.LoadAll(context.Background())

	assert.Equal(t, domain.ErrStorageUnavailable.Error(), state.Error)
	assert.Equal(t, domain.ThemeDark, state.Preferences.Theme)
	assert.Empty(t, state.Progress)
}

func TestUpdateProgress_WritesLocalAndNotifies(t *testing.T) {
	ctx := context.Background()
	stack := newTestStack(t, portsmocks.NewMockRemoteStore(t))

	var notified []domain.AppState
	stack.sync.Subscribe(func(s domain.AppState) { notified = append(notified, s) })

	rec, err := stack.sync.UpdateProgress(ctx, "autumn-leaves", domain.ProgressPatch{
		Checklist: map[string]bool{"melody": true},
	})
	require.NoError(t, err)
	assert.Equal(t, 14, rec.CompletionPercentage)

	stored, err := stack.local.Progress().Get(ctx, "autumn-leaves")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, rec, *stored)

	require.Len(t, notified, 1)
	assert.Equal(t, 14, notified[0].Progress["autumn-leaves"].CompletionPercentage)
	assert.Equal(t, 14, stack.sync.State().Progress["autumn-leaves"].CompletionPercentage)
}

func TestUpdateProgress_UnknownStandard(t *testing.T) {
	stack := newTestStack(t, remote.Offline{})

	_, err := stack.sync.UpdateProgress(context.Background(), "stairway-to-heaven", domain.ProgressPatch{})
	assert.ErrorIs(t, err, domain.ErrUnknownStandard)
}

func TestUpdatePreferences_RejectsInvalidBeforeWriting(t *testing.T) {
	kv := portsmocks.NewMockKeyValueStore(t)
	stack := newTestStack(t, remote.Offline{})
	sync := NewSyncService(stack.local, kv, remote.Offline{}, NewStateStore())

	bad := "sepia"
	_, err := sync.UpdatePreferences(context.Background(), domain.PreferencesPatch{Theme: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdatePreferences_WriteFailureLeavesState(t *testing.T) {
	kv := portsmocks.NewMockKeyValueStore(t)
	kv.EXPECT().Get(PreferencesKey, mock.Anything).Return(false)
	kv.EXPECT().Set(PreferencesKey, mock.Anything).Return(domain.ErrWriteFailure)

	stack := newTestStack(t, remote.Offline{})
	state := NewStateStore()
	sync := NewSyncService(stack.local, kv, remote.Offline{}, state)

	dark := domain.ThemeDark
	_, err := sync.UpdatePreferences(context.Background(), domain.PreferencesPatch{Theme: &dark})
	assert.ErrorIs(t, err, domain.ErrWriteFailure)
	assert.Equal(t, domain.ThemeLight, state.State().Preferences.Theme)
}

func TestUpdateSchedule_ReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	stack := newTestStack(t, remote.Offline{})
	const day = "2024-03-04"

	_, err := stack.sync.UpdateSchedule(ctx, day, []domain.ScheduleSession{
		{ID: "1", StandardID: "autumn-leaves", Duration: 30},
		{ID: "2", StandardID: "blue-bossa", Duration: 30},
	})
	require.NoError(t, err)

	_, err = stack.sync.UpdateSchedule(ctx, day, []domain.ScheduleSession{
		{ID: "1", StandardID: "autumn-leaves", Duration: 30},
		{ID: "3", StandardID: "all-blues", Duration: 45},
	})
	require.NoError(t, err)

	sessions := LoadSchedule(stack.kv)[day]
	require.Len(t, sessions, 2)
	assert.Equal(t, "1", sessions[0].ID)
	assert.Equal(t, "3", sessions[1].ID)
	assert.Equal(t, sessions, stack.sync.State().Schedule[day])
}

func TestUpdateSchedule_AssignsMissingIDs(t *testing.T) {
	stack := newTestStack(t, remote.Offline{})

	saved, err := stack.sync.UpdateSchedule(context.Background(), "2024-03-05", []domain.ScheduleSession{
		{StandardID: "autumn-leaves", Duration: 30},
		{StandardID: "autumn-leaves", Duration: 30},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].ID)
	assert.NotEqual(t, saved[0].ID, saved[1].ID)
}

func TestUpdateSchedule_ValidationRejectsBeforeWrite(t *testing.T) {
	stack := newTestStack(t, remote.Offline{})

	tests := []struct {
		name     string
		dateKey  string
		sessions []domain.ScheduleSession
	}{
		{"bad date key", "March 4th", []domain.ScheduleSession{{StandardID: "autumn-leaves", Duration: 30}}},
		{"missing standard", "2024-03-04", []domain.ScheduleSession{{Duration: 30}}},
		{"duration too long", "2024-03-04", []domain.ScheduleSession{{StandardID: "autumn-leaves", Duration: 500}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stack.sync.UpdateSchedule(context.Background(), tt.dateKey, tt.sessions)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, LoadSchedule(stack.kv))
		})
	}
}

func TestUpdateSchedule_EmptyListRemovesDay(t *testing.T) {
	ctx := context.Background()
	stack := newTestStack(t, remote.Offline{})

	_, err := stack.sync.UpdateSchedule(ctx, "2024-03-04", []domain.ScheduleSession{{StandardID: "autumn-leaves", Duration: 30}})
	require.NoError(t, err)
	_, err = stack.sync.UpdateSchedule(ctx, "2024-03-04", nil)
	require.NoError(t, err)

	_, ok := LoadSchedule(stack.kv)["2024-03-04"]
	assert.False(t, ok)
}

func TestOnIdentityTransition_AnonymousMigratesOnce(t *testing.T) {
	ctx := context.Background()
	remoteStore := portsmocks.NewMockRemoteStore(t)
	stack := newTestStack(t, remoteStore)

	_, err := stack.sync.UpdateProgress(ctx, "autumn-leaves", domain.ProgressPatch{Checklist: map[string]bool{"melody": true}})
	require.NoError(t, err)

	remoteStore.EXPECT().CreateUserRecord(mock.Anything, "u1", mock.MatchedBy(func(f ports.UserFields) bool {
		return f.IsAnonymous != nil && *f.IsAnonymous &&
			f.DisplayName != nil && *f.DisplayName == domain.AnonymousDisplayName &&
			f.Preferences != nil && *f.Preferences == domain.DefaultPreferences()
	})).Return(&domain.RemoteError{Op: "create user record", Kind: domain.ErrNetwork}).Once()
	remoteStore.EXPECT().SaveProgress(mock.Anything, "u1", "autumn-leaves", mock.Anything).Return(nil).Once()

	event := domain.IdentityEvent{
		Kind:     domain.IdentityAnonymousEstablished,
		Identity: &domain.Identity{UserID: "u1", IsAnonymous: true, DisplayName: domain.AnonymousDisplayName},
	}

	report := stack.sync.OnIdentityTransition(ctx, event)
	require.NotNil(t, report)
	assert.True(t, report.Complete())
	assert.Equal(t, 1, report.ProgressMigrated)

	// duplicate delivery of the same transition
	assert.Nil(t, stack.sync.OnIdentityTransition(ctx, event))
}

func TestOnIdentityTransition_CreatedAccountGetsUserRecordOnly(t *testing.T) {
	ctx := context.Background()
	remoteStore := portsmocks.NewMockRemoteStore(t)
	stack := newTestStack(t, remoteStore)

	_, err := stack.sync.UpdateProgress(ctx, "autumn-leaves", domain.ProgressPatch{Checklist: map[string]bool{"melody": true}})
	require.NoError(t, err)

	remoteStore.EXPECT().CreateUserRecord(mock.Anything, "u2", mock.MatchedBy(func(f ports.UserFields) bool {
		return f.Email != nil && *f.Email == "ella@example.com" && f.IsAnonymous == nil
	})).Return(nil).Once()

	report := stack.sync.OnIdentityTransition(ctx, domain.IdentityEvent{
		Created:  true,
		Kind:     domain.IdentityAuthenticated,
		Identity: &domain.Identity{UserID: "u2", Email: "ella@example.com", DisplayName: "Ella"},
	})
	assert.Nil(t, report)
}

func TestOnIdentityTransition_NoRemoteEffects(t *testing.T) {
	remoteStore := portsmocks.NewMockRemoteStore(t)
	stack := newTestStack(t, remoteStore)

	tests := []struct {
		name  string
		event domain.IdentityEvent
	}{
		{"sign in to existing account", domain.IdentityEvent{
			Kind:     domain.IdentityAuthenticated,
			Identity: &domain.Identity{UserID: "u3", Email: "ella@example.com"},
		}},
		{"signed out", domain.IdentityEvent{Kind: domain.IdentitySignedOut}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, stack.sync.OnIdentityTransition(context.Background(), tt.event))
		})
	}
}
