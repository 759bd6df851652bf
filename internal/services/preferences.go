package services

import (
	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/ports"
)

// Key-value keys for the blobs this layer owns
const (
	PreferencesKey = "preferences"
	ScheduleKey    = "schedule"
)

// LoadPreferences decodes the stored blob over the defaults, so fields
// missing from an older blob keep their default value
func LoadPreferences(kv ports.KeyValueStore) domain.Preferences {
	prefs := domain.DefaultPreferences()
	if !kv.Get(PreferencesKey, &prefs) {
		return domain.DefaultPreferences()
	}
	return prefs
}

// LoadSchedule returns the stored schedule, empty when absent
func LoadSchedule(kv ports.KeyValueStore) domain.Schedule {
	var schedule domain.Schedule
	if !kv.Get(ScheduleKey, &schedule) {
		return domain.Schedule{}
	}
	return schedule.Clone()
}
