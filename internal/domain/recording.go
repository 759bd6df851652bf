package domain

import (
	"fmt"
	"strings"
	"time"
)

// RecordingType separates reference listening from the user's own takes
type RecordingType string

const (
	RecordingPersonal  RecordingType = "personal"
	RecordingReference RecordingType = "reference"
)

// ParseRecordingType validates a recording type string
func ParseRecordingType(s string) (RecordingType, error) {
	switch RecordingType(strings.ToLower(s)) {
	case RecordingPersonal:
		return RecordingPersonal, nil
	case RecordingReference:
		return RecordingReference, nil
	}
	return "", &ValidationError{Field: "type", Reason: fmt.Sprintf("%q is not one of reference, personal", s)}
}

// Recording is a reference track or a personal take attached to a standard
type Recording struct {
	Artist      string        `json:"artist,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	Description string        `json:"description,omitempty"`
	FileRef     string        `json:"fileRef,omitempty"`
	Filename    string        `json:"filename,omitempty"`
	ID          int64         `json:"id"`
	StandardID  string        `json:"standardId"`
	Type        RecordingType `json:"type"`
	URL         string        `json:"url,omitempty"`
}

// Validate checks the fields a recording cannot be stored without
func (r Recording) Validate() error {
	if r.StandardID == "" {
		return &ValidationError{Field: "standardId", Reason: "required"}
	}
	if _, err := ParseRecordingType(string(r.Type)); err != nil {
		return err
	}
	if r.Artist == "" && r.Filename == "" {
		return &ValidationError{Field: "artist", Reason: "artist or filename required"}
	}
	if r.URL == "" && r.FileRef == "" {
		return &ValidationError{Field: "url", Reason: "url or file reference required"}
	}
	return nil
}
