package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_LoadCompleted(t *testing.T) {
	state := Reduce(NewAppState(), LoadCompleted{
		Preferences: DefaultPreferences(),
		Progress:    map[string]ProgressRecord{"autumn-leaves": NewProgressRecord("autumn-leaves")},
		Schedule:    Schedule{},
	})

	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.Contains(t, state.Progress, "autumn-leaves")
}

func TestReduce_DoesNotMutatePreviousState(t *testing.T) {
	before := Reduce(NewAppState(), LoadCompleted{Preferences: DefaultPreferences()})

	rec := NewProgressRecord("blue-bossa").Apply(ProgressPatch{Checklist: map[string]bool{"melody": true}})
	after := Reduce(before, ProgressCommitted{Record: rec})
	after = Reduce(after, ScheduleDayCommitted{
		DateKey:  "2024-03-04",
		Sessions: []ScheduleSession{{ID: "a", StandardID: "blue-bossa", Duration: 30}},
	})
	dark := ThemeDark
	after = Reduce(after, PreferencesCommitted{Preferences: before.Preferences.Apply(PreferencesPatch{Theme: &dark})})

	assert.Empty(t, before.Progress)
	assert.Empty(t, before.Schedule)
	assert.Equal(t, ThemeLight, before.Preferences.Theme)

	require.Contains(t, after.Progress, "blue-bossa")
	assert.Equal(t, 14, after.Progress["blue-bossa"].CompletionPercentage)
	assert.Len(t, after.Schedule["2024-03-04"], 1)
	assert.Equal(t, ThemeDark, after.Preferences.Theme)
}

func TestAppState_ProgressForDefaultsToEmptyRecord(t *testing.T) {
	rec := NewAppState().ProgressFor("all-blues")

	assert.Equal(t, "all-blues", rec.StandardID)
	assert.Equal(t, 0, rec.CompletionPercentage)
	assert.NotNil(t, rec.Checklist)
}

func TestReduce_ErrorRaised(t *testing.T) {
	state := Reduce(NewAppState(), ErrorRaised{Message: "local storage unavailable"})
	assert.Equal(t, "local storage unavailable", state.Error)
}
