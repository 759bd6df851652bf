package services

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

// ProgressService implements the per-standard practice operations on top of SyncService
type ProgressService struct {
	notifier *NotificationService
	now      func() time.Time
	progress ports.ProgressCollection
	sync     *SyncService
}

// NewProgressService creates a new ProgressService
func NewProgressService(progress ports.ProgressCollection, sync *SyncService) *ProgressService {
	return &ProgressService{
		now:      func() time.Time { return time.Now().UTC() },
		progress: progress,
		sync:     sync,
	}
}

// SetNotifier enables milestone sounds
func (s *ProgressService) SetNotifier(notifier *NotificationService) {
	s.notifier = notifier
}

// Get returns the stored record or the empty default for a known standard
func (s *ProgressService) Get(ctx context.Context, standardID string) (domain.ProgressRecord, error) {
	if !domain.IsKnownStandard(standardID) {
		return domain.ProgressRecord{}, fmt.Errorf("%w: %s", domain.ErrUnknownStandard, standardID)
	}

	rec, err := s.progress.Get(ctx, standardID)
	if err != nil {
		return domain.ProgressRecord{}, fmt.Errorf("failed to read progress: %w", err)
	}
	if rec == nil {
		return domain.NewProgressRecord(standardID), nil
	}
	return *rec, nil
}

// All returns every stored record keyed by standard id
func (s *ProgressService) All(ctx context.Context) (map[string]domain.ProgressRecord, error) {
	records, err := s.progress.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read progress: %w", err)
	}
	out := make(map[string]domain.ProgressRecord, len(records))
	for _, rec := range records {
		out[rec.StandardID] = rec
	}
	return out, nil
}

// Stats counts completed and in-progress standards across the catalog
func (s *ProgressService) Stats(ctx context.Context) (domain.ProgressStats, error) {
	all, err := s.All(ctx)
	if err != nil {
		return domain.ProgressStats{}, err
	}
	return domain.ComputeProgressStats(all, len(domain.Standards())), nil
}

// ToggleChecklistItem flips one canonical checklist item
func (s *ProgressService) ToggleChecklistItem(ctx context.Context, standardID, itemID string) (domain.ProgressRecord, error) {
	if !domain.IsChecklistItem(itemID) {
		return domain.ProgressRecord{}, &domain.ValidationError{Field: "item", Reason: fmt.Sprintf("unknown checklist item %q", itemID)}
	}

	rec, err := s.Get(ctx, standardID)
	if err != nil {
		return domain.ProgressRecord{}, err
	}

	checklist := maps.Clone(rec.Checklist)
	checklist[itemID] = !checklist[itemID]
	logging.Logger.Info("Toggling checklist item", "standard_id", standardID, "item", itemID, "done", checklist[itemID])

	updated, err := s.sync.UpdateProgress(ctx, standardID, domain.ProgressPatch{Checklist: checklist})
	if err != nil {
		return domain.ProgressRecord{}, err
	}
	if updated.CompletionPercentage == 100 && rec.CompletionPercentage < 100 {
		s.notifier.Celebrate(EventStandardComplete)
	}
	return updated, nil
}

// SetNotes replaces the free-text notes of a standard
func (s *ProgressService) SetNotes(ctx context.Context, standardID, notes string) (domain.ProgressRecord, error) {
	return s.sync.UpdateProgress(ctx, standardID, domain.ProgressPatch{Notes: &notes})
}

// MarkPracticed stamps lastPracticed. A zero time means now.
func (s *ProgressService) MarkPracticed(ctx context.Context, standardID string, at time.Time) (domain.ProgressRecord, error) {
	if at.IsZero() {
		at = s.now()
	}
	return s.sync.UpdateProgress(ctx, standardID, domain.ProgressPatch{LastPracticed: &at})
}

// AddRecording appends a recording to the standard's bucket for its type
func (s *ProgressService) AddRecording(ctx context.Context, standardID string, rec domain.Recording) (domain.Recording, error) {
	rec.StandardID = standardID
	if err := rec.Validate(); err != nil {
		return domain.Recording{}, err
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}

	current, err := s.Get(ctx, standardID)
	if err != nil {
		return domain.Recording{}, err
	}

	recordings, added := current.Recordings.WithAdded(rec)
	if _, err := s.sync.UpdateProgress(ctx, standardID, domain.ProgressPatch{Recordings: &recordings}); err != nil {
		return domain.Recording{}, err
	}

	logging.Logger.Info("Recording added", "standard_id", standardID, "type", rec.Type, "id", added.ID)
	return added, nil
}

// DeleteRecording removes a recording from the standard's bucket
func (s *ProgressService) DeleteRecording(ctx context.Context, standardID string, recType domain.RecordingType, id int64) error {
	current, err := s.Get(ctx, standardID)
	if err != nil {
		return err
	}

	recordings, ok := current.Recordings.WithoutRecording(recType, id)
	if !ok {
		return fmt.Errorf("%w: %s recording %d for %s", domain.ErrNotFound, recType, id, standardID)
	}

	_, err = s.sync.UpdateProgress(ctx, standardID, domain.ProgressPatch{Recordings: &recordings})
	return err
}
