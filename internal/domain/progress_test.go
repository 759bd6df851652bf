package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRecord_Apply(t *testing.T) {
	practiced := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	notes := "work on the bridge"

	base := NewProgressRecord("autumn-leaves")
	updated := base.Apply(ProgressPatch{
		Checklist:     map[string]bool{"melody": true, "chords": true, "memorized": true},
		LastPracticed: &practiced,
		Notes:         &notes,
	})

	assert.Equal(t, 43, updated.CompletionPercentage)
	assert.Equal(t, "work on the bridge", updated.Notes)
	require.NotNil(t, updated.LastPracticed)
	assert.True(t, practiced.Equal(*updated.LastPracticed))

	// base is untouched
	assert.Empty(t, base.Checklist)
	assert.Nil(t, base.LastPracticed)
	assert.Equal(t, 0, base.CompletionPercentage)
}

func TestProgressRecord_ApplyStoresLastPracticedInUTC(t *testing.T) {
	practiced := time.Date(2024, 3, 1, 20, 0, 0, 0, time.FixedZone("EST", -5*3600))

	rec := NewProgressRecord("autumn-leaves").Apply(ProgressPatch{LastPracticed: &practiced})

	require.NotNil(t, rec.LastPracticed)
	assert.Equal(t, time.UTC, rec.LastPracticed.Location())
	assert.Equal(t, time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC), *rec.LastPracticed)
}

func TestProgressRecord_MergeKeepsOtherChecklistItems(t *testing.T) {
	rec := NewProgressRecord("blue-bossa").Apply(ProgressPatch{
		Checklist: map[string]bool{"melody": true, "chords": true},
	})

	merged := rec.Merge(ProgressPatch{Checklist: map[string]bool{"chords": false, "memorized": true}})
	assert.Equal(t, map[string]bool{"melody": true, "chords": false, "memorized": true}, merged.Checklist)
	assert.Equal(t, 29, merged.CompletionPercentage)

	replaced := rec.Apply(ProgressPatch{Checklist: map[string]bool{"memorized": true}})
	assert.Equal(t, map[string]bool{"memorized": true}, replaced.Checklist)

	// the receiver is untouched
	assert.Equal(t, map[string]bool{"melody": true, "chords": true}, rec.Checklist)
}

func TestProgressRecord_ApplyLeavesUnsetFields(t *testing.T) {
	notes := "keep me"
	rec := NewProgressRecord("blue-bossa").Apply(ProgressPatch{
		Checklist: map[string]bool{"melody": true},
		Notes:     &notes,
	})

	next := rec.Apply(ProgressPatch{Checklist: map[string]bool{"melody": true, "chords": true}})

	assert.Equal(t, "keep me", next.Notes)
	assert.Equal(t, 29, next.CompletionPercentage)
}

func TestProgressRecord_ApplyDoesNotAliasPatch(t *testing.T) {
	checklist := map[string]bool{"melody": true}
	rec := NewProgressRecord("all-blues").Apply(ProgressPatch{Checklist: checklist})

	checklist["chords"] = true
	assert.Len(t, rec.Checklist, 1)
}

func TestProgressRecordings_WithAdded(t *testing.T) {
	var recs ProgressRecordings

	recs, first := recs.WithAdded(Recording{Type: RecordingReference, Artist: "Miles Davis"})
	recs, second := recs.WithAdded(Recording{Type: RecordingReference, Artist: "Bill Evans"})
	recs, personal := recs.WithAdded(Recording{Type: RecordingPersonal, Filename: "take1.m4a"})

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, int64(1), personal.ID)
	assert.Len(t, recs.Reference, 2)
	assert.Len(t, recs.Personal, 1)
}

func TestProgressRecordings_WithoutRecording(t *testing.T) {
	var recs ProgressRecordings
	recs, _ = recs.WithAdded(Recording{Type: RecordingReference, Artist: "Miles Davis"})
	recs, _ = recs.WithAdded(Recording{Type: RecordingReference, Artist: "Bill Evans"})

	out, ok := recs.WithoutRecording(RecordingReference, 1)
	require.True(t, ok)
	require.Len(t, out.Reference, 1)
	assert.Equal(t, "Bill Evans", out.Reference[0].Artist)
	assert.Len(t, recs.Reference, 2)

	_, ok = recs.WithoutRecording(RecordingPersonal, 1)
	assert.False(t, ok)
}

func TestComputeProgressStats(t *testing.T) {
	all := map[string]bool{}
	for _, item := range ChecklistItems() {
		all[item.ID] = true
	}
	progress := map[string]ProgressRecord{
		"autumn-leaves": NewProgressRecord("autumn-leaves").Apply(ProgressPatch{Checklist: all}),
		"blue-bossa":    NewProgressRecord("blue-bossa").Apply(ProgressPatch{Checklist: map[string]bool{"melody": true}}),
		"all-blues":     NewProgressRecord("all-blues"),
	}

	stats := ComputeProgressStats(progress, len(Standards()))

	assert.Equal(t, ProgressStats{Completed: 1, InProgress: 1, Total: 25}, stats)
}
