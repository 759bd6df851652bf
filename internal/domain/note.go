package domain

import (
	"strings"
	"time"
)

// Note is a dated free-text practice note for a standard
type Note struct {
	Content    string
	Date       time.Time
	ID         int64
	StandardID string
}

// Validate checks the fields a note cannot be stored without
func (n Note) Validate() error {
	if n.StandardID == "" {
		return &ValidationError{Field: "standardId", Reason: "required"}
	}
	if strings.TrimSpace(n.Content) == "" {
		return &ValidationError{Field: "content", Reason: "required"}
	}
	return nil
}
