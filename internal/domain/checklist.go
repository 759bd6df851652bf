package domain

import "math"

// ChecklistItem is one canonical practice milestone
type ChecklistItem struct {
	ID    string
	Label string
}

// checklistItems is the canonical milestone set; completion always divides by its size
var checklistItems = []ChecklistItem{
	{ID: "recordings", Label: "Found 3 recordings"},
	{ID: "melody", Label: "Learned melody"},
	{ID: "chords", Label: "Practiced basic chords"},
	{ID: "hands-together", Label: "Put hands together"},
	{ID: "memorized", Label: "Memorized tune"},
	{ID: "recorded", Label: "Uploaded recording"},
	{ID: "creative", Label: "Uploaded a creative version"},
}

// ChecklistItems returns the canonical checklist in display order
func ChecklistItems() []ChecklistItem {
	out := make([]ChecklistItem, len(checklistItems))
	copy(out, checklistItems)
	return out
}

// IsChecklistItem reports whether id is a canonical checklist item
func IsChecklistItem(id string) bool {
	for _, item := range checklistItems {
		if item.ID == id {
			return true
		}
	}
	return false
}

// CompletedCount counts canonical items marked done. Unknown keys are ignored.
func CompletedCount(checklist map[string]bool) int {
	count := 0
	for _, item := range checklistItems {
		if checklist[item.ID] {
			count++
		}
	}
	return count
}

// ComputeCompletion returns round(100 * completed / canonical item count)
func ComputeCompletion(checklist map[string]bool) int {
	done := CompletedCount(checklist)
	if done == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(len(checklistItems))))
}
