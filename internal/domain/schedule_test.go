package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSessions(t *testing.T) {
	valid := ScheduleSession{ID: "a", StandardID: "autumn-leaves", Duration: 30}

	tests := []struct {
		name     string
		sessions []ScheduleSession
		field    string
	}{
		{"valid", []ScheduleSession{valid}, ""},
		{"missing id accepted", []ScheduleSession{{StandardID: "blue-bossa", Duration: 5}}, ""},
		{"missing standard", []ScheduleSession{{ID: "a", Duration: 30}}, "standardId"},
		{"unknown standard", []ScheduleSession{{ID: "a", StandardID: "nope", Duration: 30}}, "standardId"},
		{"too short", []ScheduleSession{{ID: "a", StandardID: "autumn-leaves", Duration: 4}}, "duration"},
		{"too long", []ScheduleSession{{ID: "a", StandardID: "autumn-leaves", Duration: 181}}, "duration"},
		{"duplicate ids", []ScheduleSession{valid, valid}, "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessions(tt.sessions)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSchedule_WithReplacesWholesale(t *testing.T) {
	s := Schedule{}.With("2024-03-04", []ScheduleSession{
		{ID: "a", StandardID: "autumn-leaves", Duration: 30},
		{ID: "b", StandardID: "blue-bossa", Duration: 45},
	})

	replaced := s.With("2024-03-04", []ScheduleSession{{ID: "c", StandardID: "all-blues", Duration: 20}})

	require.Len(t, replaced.Sessions("2024-03-04"), 1)
	assert.Equal(t, "c", replaced.Sessions("2024-03-04")[0].ID)
	assert.Len(t, s.Sessions("2024-03-04"), 2)

	cleared := replaced.With("2024-03-04", nil)
	_, ok := cleared["2024-03-04"]
	assert.False(t, ok)
}

func TestWeekDateKeys(t *testing.T) {
	wednesday := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	keys := WeekDateKeys(wednesday)

	require.Len(t, keys, 7)
	assert.Equal(t, "2024-03-04", keys[0])
	assert.Equal(t, "2024-03-10", keys[6])

	sunday := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, keys, WeekDateKeys(sunday))
}

func TestParseDateKey(t *testing.T) {
	_, err := ParseDateKey("2024-03-04")
	assert.NoError(t, err)

	_, err = ParseDateKey("04/03/2024")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSchedule_Summarize(t *testing.T) {
	s := Schedule{"2024-03-04": {
		{ID: "a", StandardID: "autumn-leaves", Duration: 30, Completed: true},
		{ID: "b", StandardID: "blue-bossa", Duration: 45},
	}}

	assert.Equal(t, DaySummary{Completed: 1, DateKey: "2024-03-04", Sessions: 2, TotalMinutes: 75}, s.Summarize("2024-03-04"))
	assert.Equal(t, DaySummary{DateKey: "2024-03-05"}, s.Summarize("2024-03-05"))
}
