package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCompletion(t *testing.T) {
	tests := []struct {
		name      string
		checklist map[string]bool
		expected  int
	}{
		{"nil checklist", nil, 0},
		{"empty checklist", map[string]bool{}, 0},
		{"all false", map[string]bool{"melody": false, "chords": false}, 0},
		{"one of seven", map[string]bool{"melody": true}, 14},
		{"three of seven", map[string]bool{"melody": true, "chords": true, "memorized": true}, 43},
		{"partial map divides by canonical count", map[string]bool{"melody": true, "chords": true}, 29},
		{"unknown keys ignored", map[string]bool{"melody": true, "juggling": true}, 14},
		{"all seven", map[string]bool{
			"recordings":     true,
			"melody":         true,
			"chords":         true,
			"hands-together": true,
			"memorized":      true,
			"recorded":       true,
			"creative":       true,
		}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeCompletion(tt.checklist))
		})
	}
}

func TestChecklistItems_ReturnsCopy(t *testing.T) {
	items := ChecklistItems()
	assert.Len(t, items, 7)

	items[0].ID = "mutated"
	assert.True(t, IsChecklistItem("recordings"))
	assert.False(t, IsChecklistItem("mutated"))
}
