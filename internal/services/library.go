package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

// LibraryService manages the indexed recordings and notes collections
type LibraryService struct {
	local ports.LocalStore
	now   func() time.Time
}

// NewLibraryService creates a new LibraryService
func NewLibraryService(local ports.LocalStore) *LibraryService {
	return &LibraryService{
		local: local,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// AddRecording stores a recording; the collection assigns its id
func (s *LibraryService) AddRecording(ctx context.Context, rec domain.Recording) (domain.Recording, error) {
	if err := rec.Validate(); err != nil {
		return domain.Recording{}, err
	}
	if !domain.IsKnownStandard(rec.StandardID) {
		return domain.Recording{}, fmt.Errorf("%w: %s", domain.ErrUnknownStandard, rec.StandardID)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.now()
	}

	added, err := s.local.Recordings().Add(ctx, rec)
	if err != nil {
		logging.Logger.Error("Failed to add recording", "standard_id", rec.StandardID, "error", err)
		return domain.Recording{}, err
	}

	logging.Logger.Info("Library recording added", "id", added.ID, "standard_id", added.StandardID)
	return added, nil
}

// Recordings lists a standard's recordings, optionally only one type
func (s *LibraryService) Recordings(ctx context.Context, standardID string, recType domain.RecordingType) ([]domain.Recording, error) {
	if recType == "" {
		return s.local.Recordings().GetByIndex(ctx, "standardId", standardID)
	}

	recs, err := s.local.Recordings().GetByIndex(ctx, "type", string(recType))
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(recs, func(r domain.Recording) bool { return r.StandardID != standardID }), nil
}

func (s *LibraryService) DeleteRecording(ctx context.Context, id int64) error {
	logging.Logger.Info("Deleting library recording", "id", id)
	return s.local.Recordings().Delete(ctx, id)
}

// AddNote stores a note dated now
func (s *LibraryService) AddNote(ctx context.Context, standardID, content string) (domain.Note, error) {
	note := domain.Note{Content: strings.TrimSpace(content), Date: s.now(), StandardID: standardID}
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}
	if !domain.IsKnownStandard(standardID) {
		return domain.Note{}, fmt.Errorf("%w: %s", domain.ErrUnknownStandard, standardID)
	}

	added, err := s.local.Notes().Add(ctx, note)
	if err != nil {
		logging.Logger.Error("Failed to add note", "standard_id", standardID, "error", err)
		return domain.Note{}, err
	}
	return added, nil
}

// Notes lists a standard's notes, newest first
func (s *LibraryService) Notes(ctx context.Context, standardID string) ([]domain.Note, error) {
	notes, err := s.local.Notes().GetByIndex(ctx, "standardId", standardID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(notes, func(a, b domain.Note) int { return b.Date.Compare(a.Date) })
	return notes, nil
}

// NotesOn lists every note written on a UTC date-key, newest first
func (s *LibraryService) NotesOn(ctx context.Context, dateKey string) ([]domain.Note, error) {
	if _, err := domain.ParseDateKey(dateKey); err != nil {
		return nil, err
	}
	notes, err := s.local.Notes().GetByIndex(ctx, "date", dateKey)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(notes, func(a, b domain.Note) int { return b.Date.Compare(a.Date) })
	return notes, nil
}

func (s *LibraryService) DeleteNote(ctx context.Context, id int64) error {
	logging.Logger.Info("Deleting note", "id", id)
	return s.local.Notes().Delete(ctx, id)
}
