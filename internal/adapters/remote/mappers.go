package remote

import (
	"time"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/ports"
)

// applyUserFields merges the set fields into m and returns the touched columns
func applyUserFields(m *UserModel, f ports.UserFields) []string {
	var columns []string
	if f.DisplayName != nil {
		m.DisplayName = *f.DisplayName
		columns = append(columns, "display_name")
	}
	if f.Email != nil {
		m.Email = *f.Email
		columns = append(columns, "email")
	}
	if f.IsAnonymous != nil {
		m.IsAnonymous = *f.IsAnonymous
		columns = append(columns, "is_anonymous")
	}
	if f.Preferences != nil {
		prefs := *f.Preferences
		m.Preferences = &prefs
		columns = append(columns, "preferences")
	}
	if f.Schedule != nil {
		m.Schedule = f.Schedule.Clone()
		columns = append(columns, "schedule")
	}
	return columns
}

func userModelToPort(m UserModel) ports.RemoteUser {
	u := ports.RemoteUser{
		DisplayName: m.DisplayName,
		Email:       m.Email,
		IsAnonymous: m.IsAnonymous,
		Schedule:    m.Schedule.Clone(),
		UpdatedAt:   m.UpdatedAt.UTC(),
		UserID:      m.UserID,
	}
	if m.CreatedAt != nil {
		u.CreatedAt = m.CreatedAt.UTC()
	}
	if m.Preferences != nil {
		prefs := *m.Preferences
		u.Preferences = &prefs
	}
	return u
}

func progressModelToRecord(m ProgressModel) domain.ProgressRecord {
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

func recordToProgressModel(userID string, rec domain.ProgressRecord, updatedAt time.Time) ProgressModel {
	c := rec.Clone()
	return ProgressModel{
		Checklist:            c.Checklist,
		CompletionPercentage: c.CompletionPercentage,
		LastPracticed:        c.LastPracticed,
		Notes:                c.Notes,
		Recordings:           c.Recordings,
		StandardID:           c.StandardID,
		UpdatedAt:            updatedAt,
		UserID:               userID,
	}
}
