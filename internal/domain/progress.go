package domain

import (
	"maps"
	"slices"
	"time"
)

// ProgressRecordings holds the per-standard recording buckets
type ProgressRecordings struct {
	Personal  []Recording `json:"personal"`
	Reference []Recording `json:"reference"`
}

// Bucket returns the list for the given type
func (r ProgressRecordings) Bucket(t RecordingType) []Recording {
	if t == RecordingPersonal {
		return r.Personal
	}
	return r.Reference
}

// WithAdded returns a copy with rec appended to its bucket.
// The new entry gets the next id in that bucket.
func (r ProgressRecordings) WithAdded(rec Recording) (ProgressRecordings, Recording) {
	out := r.clone()
	bucket := out.Bucket(rec.Type)

	var maxID int64
	for _, existing := range bucket {
		maxID = max(maxID, existing.ID)
	}
	rec.ID = maxID + 1
	bucket = append(bucket, rec)

	out.set(rec.Type, bucket)
	return out, rec
}

// WithoutRecording returns a copy without the given entry and whether it existed
func (r ProgressRecordings) WithoutRecording(t RecordingType, id int64) (ProgressRecordings, bool) {
	out := r.clone()
	bucket := out.Bucket(t)
	idx := slices.IndexFunc(bucket, func(rec Recording) bool { return rec.ID == id })
	if idx < 0 {
		return out, false
	}
	out.set(t, slices.Delete(bucket, idx, idx+1))
	return out, true
}

func (r *ProgressRecordings) set(t RecordingType, bucket []Recording) {
	if t == RecordingPersonal {
		r.Personal = bucket
		return
	}
	r.Reference = bucket
}

func (r ProgressRecordings) clone() ProgressRecordings {
	return ProgressRecordings{
		Personal:  append([]Recording{}, r.Personal...),
		Reference: append([]Recording{}, r.Reference...),
	}
}

// ProgressRecord is the per-standard practice state
type ProgressRecord struct {
	Checklist            map[string]bool
	CompletionPercentage int
	LastPracticed        *time.Time
	Notes                string
	Recordings           ProgressRecordings
	StandardID           string
}

// NewProgressRecord returns the lazily-created empty record for a standard
func NewProgressRecord(standardID string) ProgressRecord {
	return ProgressRecord{
		Checklist:  map[string]bool{},
		Recordings: ProgressRecordings{Personal: []Recording{}, Reference: []Recording{}},
		StandardID: standardID,
	}
}

// ProgressPatch is a partial update. Nil fields are left untouched.
// Apply replaces the whole checklist with a non-nil Checklist; Merge only
// overwrites the item ids the patch names, like a merged document write.
type ProgressPatch struct {
	Checklist     map[string]bool
	LastPracticed *time.Time
	Notes         *string
	Recordings    *ProgressRecordings
}

// IsEmpty reports whether the patch changes nothing
func (p ProgressPatch) IsEmpty() bool {
	return p.Checklist == nil && p.LastPracticed == nil && p.Notes == nil && p.Recordings == nil
}

// PatchFromRecord builds a patch carrying every field of r
func PatchFromRecord(r ProgressRecord) ProgressPatch {
	c := r.Clone()
	notes := c.Notes
	return ProgressPatch{
		Checklist:     c.Checklist,
		LastPracticed: c.LastPracticed,
		Notes:         &notes,
		Recordings:    &c.Recordings,
	}
}

// Apply returns a new record with the patch merged in and completion recomputed
func (r ProgressRecord) Apply(p ProgressPatch) ProgressRecord {
	out := r.Clone()
	if p.Checklist != nil {
		out.Checklist = maps.Clone(p.Checklist)
	}
	if p.LastPracticed != nil {
		ts := p.LastPracticed.UTC()
		out.LastPracticed = &ts
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.Recordings != nil {
		out.Recordings = p.Recordings.clone()
	}
	out.CompletionPercentage = ComputeCompletion(out.Checklist)
	return out
}

// Merge is Apply with the patch's checklist items merged key by key
// into the existing checklist
func (r ProgressRecord) Merge(p ProgressPatch) ProgressRecord {
	if p.Checklist != nil {
		merged := maps.Clone(r.Checklist)
		if merged == nil {
			merged = map[string]bool{}
		}
		maps.Copy(merged, p.Checklist)
		p.Checklist = merged
	}
	return r.Apply(p)
}

// Clone returns a deep copy
func (r ProgressRecord) Clone() ProgressRecord {
	out := r
	out.Checklist = maps.Clone(r.Checklist)
	if out.Checklist == nil {
		out.Checklist = map[string]bool{}
	}
	if r.LastPracticed != nil {
		ts := *r.LastPracticed
		out.LastPracticed = &ts
	}
	out.Recordings = r.Recordings.clone()
	return out
}

// ProgressStats summarizes progress across the catalog
type ProgressStats struct {
	Completed  int
	InProgress int
	Total      int
}

// ComputeProgressStats counts finished and started standards against the catalog size
func ComputeProgressStats(progress map[string]ProgressRecord, total int) ProgressStats {
	stats := ProgressStats{Total: total}
	for _, p := range progress {
		switch {
		case p.CompletionPercentage == 100:
			stats.Completed++
		case p.CompletionPercentage > 0:
			stats.InProgress++
		}
	}
	return stats
}
