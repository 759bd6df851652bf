package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shed/internal/domain"
)

func newScheduleService(t *testing.T) (*ScheduleService, *ProgressService) {
	t.Helper()
	progress, stack := newProgressService(t)
	return NewScheduleService(stack.kv, stack.sync, progress), progress
}

func TestScheduleService_AddSessionDefaults(t *testing.T) {
	svc, _ := newScheduleService(t)

	session, err := svc.AddSession(context.Background(), "2024-03-04", domain.ScheduleSession{StandardID: "autumn-leaves"})
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, domain.DefaultSessionMinutes, session.Duration)
	assert.False(t, session.Completed)

	day, err := svc.Day("2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, []domain.ScheduleSession{session}, day)
}

func TestScheduleService_ToggleStampsLastPracticed(t *testing.T) {
	ctx := context.Background()
	svc, progress := newScheduleService(t)
	now := time.Date(2024, 3, 4, 19, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	session, err := svc.AddSession(ctx, "2024-03-04", domain.ScheduleSession{StandardID: "blue-bossa", Duration: 45})
	require.NoError(t, err)

	toggled, err := svc.ToggleSession(ctx, "2024-03-04", session.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	rec, err := progress.Get(ctx, "blue-bossa")
	require.NoError(t, err)
	require.NotNil(t, rec.LastPracticed)
	assert.True(t, now.Equal(*rec.LastPracticed))

	toggled, err = svc.ToggleSession(ctx, "2024-03-04", session.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestScheduleService_EditSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScheduleService(t)

	session, err := svc.AddSession(ctx, "2024-03-04", domain.ScheduleSession{StandardID: "autumn-leaves"})
	require.NoError(t, err)

	focus := "voice leading"
	edited, err := svc.EditSession(ctx, "2024-03-04", session.ID, SessionPatch{Focus: &focus})
	require.NoError(t, err)
	assert.Equal(t, "voice leading", edited.Focus)
	assert.Equal(t, session.ID, edited.ID)

	tooLong := 240
	_, err = svc.EditSession(ctx, "2024-03-04", session.ID, SessionPatch{Duration: &tooLong})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.EditSession(ctx, "2024-03-04", "missing", SessionPatch{Focus: &focus})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScheduleService_DeleteAndWeek(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScheduleService(t)

	keep, err := svc.AddSession(ctx, "2024-03-04", domain.ScheduleSession{StandardID: "autumn-leaves", Duration: 20})
	require.NoError(t, err)
	drop, err := svc.AddSession(ctx, "2024-03-04", domain.ScheduleSession{StandardID: "all-blues", Duration: 40})
	require.NoError(t, err)
	_, err = svc.AddSession(ctx, "2024-03-06", domain.ScheduleSession{StandardID: "blue-bossa", Duration: 15})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(ctx, "2024-03-04", drop.ID))
	assert.ErrorIs(t, svc.DeleteSession(ctx, "2024-03-04", drop.ID), domain.ErrNotFound)

	week := svc.Week(time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))
	require.Len(t, week, 7)
	assert.Equal(t, domain.DaySummary{DateKey: "2024-03-04", Sessions: 1, TotalMinutes: keep.Duration}, week[0])
	assert.Equal(t, domain.DaySummary{DateKey: "2024-03-06", Sessions: 1, TotalMinutes: 15}, week[2])
	assert.Equal(t, domain.DaySummary{DateKey: "2024-03-10"}, week[6])
}
