package domain

import (
	"fmt"
	"maps"
	"time"
)

// DateKeyLayout is the ISO calendar date format used to bucket sessions
const DateKeyLayout = "2006-01-02"

// Session duration bounds in minutes
const (
	MaxSessionMinutes     = 180
	MinSessionMinutes     = 5
	DefaultSessionMinutes = 30
)

// ScheduleSession is one planned practice block on a given day
type ScheduleSession struct {
	Completed  bool   `json:"completed"`
	Duration   int    `json:"duration"`
	Focus      string `json:"focus"`
	ID         string `json:"id"`
	Notes      string `json:"notes"`
	StandardID string `json:"standardId"`
}

// Schedule maps a date-key to that day's sessions
type Schedule map[string][]ScheduleSession

// DateKey formats a time as a date-key in its own location
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey validates and parses a date-key
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "dateKey", Reason: fmt.Sprintf("%q is not YYYY-MM-DD", key)}
	}
	return t, nil
}

// WeekDateKeys returns the seven date-keys starting at the Monday of t's week
func WeekDateKeys(t time.Time) []string {
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	keys := make([]string, 7)
	for i := range keys {
		keys[i] = DateKey(monday.AddDate(0, 0, i))
	}
	return keys
}

// Validate checks a single session. Ids are checked at list level.
func (s ScheduleSession) Validate() error {
	if s.StandardID == "" {
		return &ValidationError{Field: "standardId", Reason: "session must reference a standard"}
	}
	if !IsKnownStandard(s.StandardID) {
		return &ValidationError{Field: "standardId", Reason: fmt.Sprintf("unknown standard %q", s.StandardID)}
	}
	if s.Duration < MinSessionMinutes || s.Duration > MaxSessionMinutes {
		return &ValidationError{Field: "duration", Reason: fmt.Sprintf("%d minutes is outside %d-%d", s.Duration, MinSessionMinutes, MaxSessionMinutes)}
	}
	return nil
}

// ValidateSessions checks every session and id uniqueness within the list.
// Sessions without an id are accepted; the caller assigns one.
func ValidateSessions(sessions []ScheduleSession) error {
	seen := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.ID == "" {
			continue
		}
		if seen[s.ID] {
			return &ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate session id %q", s.ID)}
		}
		seen[s.ID] = true
	}
	return nil
}

// Sessions returns a copy of the list for a date-key, never nil
func (s Schedule) Sessions(dateKey string) []ScheduleSession {
	return append([]ScheduleSession{}, s[dateKey]...)
}

// With returns a copy with the date-key's list replaced wholesale.
// An empty list removes the key.
func (s Schedule) With(dateKey string, sessions []ScheduleSession) Schedule {
	out := s.Clone()
	if len(sessions) == 0 {
		delete(out, dateKey)
		return out
	}
	out[dateKey] = append([]ScheduleSession{}, sessions...)
	return out
}

// Clone returns a deep copy, never nil
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for k, v := range maps.All(s) {
		out[k] = append([]ScheduleSession{}, v...)
	}
	return out
}

// DaySummary aggregates one day of the schedule
type DaySummary struct {
	Completed    int
	DateKey      string
	Sessions     int
	TotalMinutes int
}

// Summarize totals planned minutes and completed sessions for a date-key
func (s Schedule) Summarize(dateKey string) DaySummary {
	summary := DaySummary{DateKey: dateKey}
	for _, session := range s[dateKey] {
		summary.Sessions++
		summary.TotalMinutes += session.Duration
		if session.Completed {
			summary.Completed++
		}
	}
	return summary
}
