package domain

import "maps"

// AppState is the in-memory view the UI renders from.
// Values are never mutated in place; Reduce returns a new AppState.
type AppState struct {
	Error       string
	Loading     bool
	Preferences Preferences
	Progress    map[string]ProgressRecord
	Schedule    Schedule
}

// NewAppState returns the state before the first load
func NewAppState() AppState {
	return AppState{
		Loading:     true,
		Preferences: DefaultPreferences(),
		Progress:    map[string]ProgressRecord{},
		Schedule:    Schedule{},
	}
}

// Command describes a committed change to apply to AppState
type Command interface {
	command()
}

// LoadCompleted replaces the whole state after LoadAll
type LoadCompleted struct {
	Error       string
	Preferences Preferences
	Progress    map[string]ProgressRecord
	Schedule    Schedule
}

// ProgressCommitted replaces one standard's progress record
type ProgressCommitted struct {
	Record ProgressRecord
}

// PreferencesCommitted replaces the preferences snapshot
type PreferencesCommitted struct {
	Preferences Preferences
}

// ScheduleDayCommitted replaces the sessions of one date-key
type ScheduleDayCommitted struct {
	DateKey  string
	Sessions []ScheduleSession
}

// ErrorRaised records a persistent user-visible error
type ErrorRaised struct {
	Message string
}

func (LoadCompleted) command()        {}
func (ProgressCommitted) command()    {}
func (PreferencesCommitted) command() {}
func (ScheduleDayCommitted) command() {}
func (ErrorRaised) command()          {}

// Reduce applies cmd to state and returns the new state
func Reduce(state AppState, cmd Command) AppState {
	switch c := cmd.(type) {
	case LoadCompleted:
		progress := make(map[string]ProgressRecord, len(c.Progress))
		for id, rec := range c.Progress {
			progress[id] = rec.Clone()
		}
		return AppState{
			Error:       c.Error,
			Preferences: c.Preferences,
			Progress:    progress,
			Schedule:    c.Schedule.Clone(),
		}

	case ProgressCommitted:
		next := state
		next.Progress = maps.Clone(state.Progress)
		if next.Progress == nil {
			next.Progress = map[string]ProgressRecord{}
		}
		next.Progress[c.Record.StandardID] = c.Record.Clone()
		return next

	case PreferencesCommitted:
		next := state
		next.Preferences = c.Preferences
		return next

	case ScheduleDayCommitted:
		next := state
		next.Schedule = state.Schedule.With(c.DateKey, c.Sessions)
		return next

	case ErrorRaised:
		next := state
		next.Error = c.Message
		return next
	}
	return state
}

// ProgressFor returns the stored record or the empty default
func (s AppState) ProgressFor(standardID string) ProgressRecord {
	if rec, ok := s.Progress[standardID]; ok {
		return rec.Clone()
	}
	return NewProgressRecord(standardID)
}
