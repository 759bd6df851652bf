package storage

import (
	"time"

	"github.com/renato0307/shed/internal/domain"
)

func recordingToModel(r domain.Recording) RecordingModel {
	return RecordingModel{
		Artist:      r.Artist,
		CreatedAt:   r.CreatedAt.UTC(),
		Description: r.Description,
		FileRef:     r.FileRef,
		Filename:    r.Filename,
		ID:          r.ID,
		StandardID:  r.StandardID,
		Type:        string(r.Type),
		URL:         r.URL,
	}
}

func recordingModelToDomain(m RecordingModel) domain.Recording {
	return domain.Recording{
		Artist:      m.Artist,
		CreatedAt:   m.CreatedAt.UTC(),
		Description: m.Description,
		FileRef:     m.FileRef,
		Filename:    m.Filename,
		ID:          m.ID,
		StandardID:  m.StandardID,
		Type:        domain.RecordingType(m.Type),
		URL:         m.URL,
	}
}

// noteToModel stores dates in UTC so the date index compares one text format
func noteToModel(n domain.Note) NoteModel {
	return NoteModel{
		Content:    n.Content,
		Date:       n.Date.UTC(),
		ID:         n.ID,
		StandardID: n.StandardID,
	}
}

func noteModelToDomain(m NoteModel) domain.Note {
	return domain.Note{
		Content:    m.Content,
		Date:       m.Date.UTC(),
		ID:         m.ID,
		StandardID: m.StandardID,
	}
}

func progressToModel(p domain.ProgressRecord) ProgressModel {
	c := p.Clone()
	return ProgressModel{
		Checklist:            c.Checklist,
		CompletionPercentage: c.CompletionPercentage,
		LastPracticed:        c.LastPracticed,
		Notes:                c.Notes,
		Recordings:           c.Recordings,
		StandardID:           c.StandardID,
	}
}

func progressModelToDomain(m ProgressModel) domain.ProgressRecord {
	rec := domain.NewProgressRecord(m.StandardID)
	if m.Checklist != nil {
		rec.Checklist = m.Checklist
	}
	if m.Recordings.Personal != nil {
		rec.Recordings.Personal = m.Recordings.Personal
	}
	if m.Recordings.Reference != nil {
		rec.Recordings.Reference = m.Recordings.Reference
	}
	if m.LastPracticed != nil {
		ts := m.LastPracticed.UTC()
		rec.LastPracticed = &ts
	}
	rec.CompletionPercentage = m.CompletionPercentage
	rec.Notes = m.Notes
	return rec
}

func progressKey(p domain.ProgressRecord) string { return p.StandardID }

func recordingKey(r domain.Recording) int64 { return r.ID }

func withRecordingKey(r domain.Recording, id int64) domain.Recording {
	r.ID = id
	return r
}

func noteKey(n domain.Note) int64 { return n.ID }

func withNoteKey(n domain.Note, id int64) domain.Note {
	n.ID = id
	return n
}

func utcNow() time.Time { return time.Now().UTC() }
