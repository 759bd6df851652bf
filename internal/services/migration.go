package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

// MigrationFailure is one item that could not be copied to the remote store
type MigrationFailure struct {
	Err  error
	Item string
}

// MigrationReport summarizes a best-effort migration run
type MigrationReport struct {
	Failures            []MigrationFailure
	PreferencesMigrated bool
	ProgressMigrated    int
	ProgressTotal       int
	ScheduleMigrated    bool
	UserID              string
}

// Complete reports whether every attempted item was written
func (r MigrationReport) Complete() bool {
	return len(r.Failures) == 0
}

// String renders a one-line summary
func (r MigrationReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "progress %d/%d", r.ProgressMigrated, r.ProgressTotal)
	if r.PreferencesMigrated {
		b.WriteString(", preferences")
	}
	if r.ScheduleMigrated {
		b.WriteString(", schedule")
	}
	if !r.Complete() {
		fmt.Fprintf(&b, ", %d failed", len(r.Failures))
	}
	return b.String()
}

func (r *MigrationReport) fail(item string, err error) {
	logging.Logger.Warn("Migration item failed", "user_id", r.UserID, "item", item, "error", err)
	r.Failures = append(r.Failures, MigrationFailure{Err: err, Item: item})
}

// MigrationCoordinator copies local data into the remote store.
// Failures are recorded per item and never abort the run; local data is never deleted.
type MigrationCoordinator struct {
	kv       ports.KeyValueStore
	progress ports.ProgressReader
	remote   ports.RemoteStore
}

// NewMigrationCoordinator creates a new MigrationCoordinator
func NewMigrationCoordinator(
	kv ports.KeyValueStore,
	progress ports.ProgressReader,
	remote ports.RemoteStore,
) *MigrationCoordinator {
	return &MigrationCoordinator{
		kv:       kv,
		progress: progress,
		remote:   remote,
	}
}

// Migrate reads preferences, progress and schedule in that order and writes
// each non-empty source to the remote store under userID
func (m *MigrationCoordinator) Migrate(ctx context.Context, userID string) MigrationReport {
	logging.Logger.Info("Migrating local data to remote store", "user_id", userID)
	report := MigrationReport{UserID: userID}

	prefs := domain.DefaultPreferences()
	hasPrefs := m.kv.Get(PreferencesKey, &prefs)

	records, progressErr := m.progress.GetAll(ctx)

	var schedule domain.Schedule
	hasSchedule := m.kv.Get(ScheduleKey, &schedule) && len(schedule) > 0

	if hasPrefs {
		if err := m.remote.SaveUserFields(ctx, userID, ports.UserFields{Preferences: &prefs}); err != nil {
			report.fail("preferences", err)
		} else {
			report.PreferencesMigrated = true
		}
	}

	if progressErr != nil {
		report.fail("progress", progressErr)
	}
	report.ProgressTotal = len(records)
	for _, rec := range records {
		if err := m.remote.SaveProgress(ctx, userID, rec.StandardID, domain.PatchFromRecord(rec)); err != nil {
			report.fail("progress/"+rec.StandardID, err)
			continue
		}
		report.ProgressMigrated++
	}

	if hasSchedule {
		if err := m.remote.SaveUserFields(ctx, userID, ports.UserFields{Schedule: schedule}); err != nil {
			report.fail("schedule", err)
		} else {
			report.ScheduleMigrated = true
		}
	}

	logging.Logger.Info("Migration finished",
		"user_id", userID,
		"progress", report.ProgressMigrated,
		"progress_total", report.ProgressTotal,
		"failures", len(report.Failures))
	return report
}
