package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

// ScheduleService edits the weekly practice schedule one session at a time
type ScheduleService struct {
	kv       ports.KeyValueStore
	now      func() time.Time
	progress *ProgressService
	sync     *SyncService
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(kv ports.KeyValueStore, sync *SyncService, progress *ProgressService) *ScheduleService {
	return &ScheduleService{
		kv:       kv,
		now:      func() time.Time { return time.Now().UTC() },
		progress: progress,
		sync:     sync,
	}
}

// Day returns the sessions planned for a date-key
func (s *ScheduleService) Day(dateKey string) ([]domain.ScheduleSession, error) {
	if _, err := domain.ParseDateKey(dateKey); err != nil {
		return nil, err
	}
	return LoadSchedule(s.kv).Sessions(dateKey), nil
}

// Week summarizes the Monday-to-Sunday week containing t
func (s *ScheduleService) Week(t time.Time) []domain.DaySummary {
	schedule := LoadSchedule(s.kv)
	keys := domain.WeekDateKeys(t)
	out := make([]domain.DaySummary, 0, len(keys))
	for _, key := range keys {
		out = append(out, schedule.Summarize(key))
	}
	return out
}

// AddSession appends a session to a day. Duration defaults to 30 minutes.
func (s *ScheduleService) AddSession(ctx context.Context, dateKey string, session domain.ScheduleSession) (domain.ScheduleSession, error) {
	sessions, err := s.Day(dateKey)
	if err != nil {
		return domain.ScheduleSession{}, err
	}

	if session.Duration == 0 {
		session.Duration = domain.DefaultSessionMinutes
	}
	session.ID = ""
	session.Completed = false

	saved, err := s.sync.UpdateSchedule(ctx, dateKey, append(sessions, session))
	if err != nil {
		return domain.ScheduleSession{}, err
	}
	return saved[len(saved)-1], nil
}

// EditSession applies patch to one session
func (s *ScheduleService) EditSession(ctx context.Context, dateKey, id string, patch SessionPatch) (domain.ScheduleSession, error) {
	return s.modify(ctx, dateKey, id, func(session *domain.ScheduleSession) {
		if patch.StandardID != nil {
			session.StandardID = *patch.StandardID
		}
		if patch.Duration != nil {
			session.Duration = *patch.Duration
		}
		if patch.Focus != nil {
			session.Focus = *patch.Focus
		}
		if patch.Notes != nil {
			session.Notes = *patch.Notes
		}
	})
}

// ToggleSession flips a session's completed flag. Completing a session
// stamps lastPracticed on its standard.
func (s *ScheduleService) ToggleSession(ctx context.Context, dateKey, id string) (domain.ScheduleSession, error) {
	updated, err := s.modify(ctx, dateKey, id, func(session *domain.ScheduleSession) {
		session.Completed = !session.Completed
	})
	if err != nil {
		return domain.ScheduleSession{}, err
	}

	if updated.Completed {
		s.progress.notifier.Celebrate(EventSessionComplete)
		if _, err := s.progress.MarkPracticed(ctx, updated.StandardID, s.now()); err != nil {
			logging.Logger.Warn("Failed to stamp last practiced", "standard_id", updated.StandardID, "error", err)
		}
	}
	return updated, nil
}

// DeleteSession removes one session from a day
func (s *ScheduleService) DeleteSession(ctx context.Context, dateKey, id string) error {
	sessions, err := s.Day(dateKey)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(sessions, func(session domain.ScheduleSession) bool { return session.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: session %s on %s", domain.ErrNotFound, id, dateKey)
	}

	_, err = s.sync.UpdateSchedule(ctx, dateKey, slices.Delete(sessions, idx, idx+1))
	return err
}

func (s *ScheduleService) modify(ctx context.Context, dateKey, id string, change func(*domain.ScheduleSession)) (domain.ScheduleSession, error) {
	sessions, err := s.Day(dateKey)
	if err != nil {
		return domain.ScheduleSession{}, err
	}

	idx := slices.IndexFunc(sessions, func(session domain.ScheduleSession) bool { return session.ID == id })
	if idx < 0 {
		return domain.ScheduleSession{}, fmt.Errorf("%w: session %s on %s", domain.ErrNotFound, id, dateKey)
	}
	change(&sessions[idx])

	saved, err := s.sync.UpdateSchedule(ctx, dateKey, sessions)
	if err != nil {
		return domain.ScheduleSession{}, err
	}
	return saved[idx], nil
}
