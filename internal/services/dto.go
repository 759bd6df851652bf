package services

// SessionPatch carries the schedule session fields to change; nil means untouched
type SessionPatch struct {
	Duration   *int
	Focus      *string
	Notes      *string
	StandardID *string
}
