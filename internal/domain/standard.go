package domain

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

// Difficulty grades how hard a standard is to learn
type Difficulty string

const (
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
)

// Standard is a read-only catalog entry a user tracks practice progress against
type Standard struct {
	ChordProgression string
	Composer         string
	Difficulty       Difficulty
	ID               string
	Key              string
	Style            string
	TimeSignature    string
	Title            string
}

// PracticeVariation describes one way of practicing a standard
type PracticeVariation struct {
	Description string
	ID          string
	Name        string
	Tips        []string
}

// Practice variation identifiers, also valid values for Preferences.DefaultPracticeVariation
const (
	VariationAdvanced = "advanced"
	VariationBasic    = "basic"
	VariationCreative = "creative"
	VariationSwing    = "swing"
)

var practiceVariations = []PracticeVariation{
	{
		ID:          VariationBasic,
		Name:        "Basic",
		Description: "Simple melody with basic chord voicings",
		Tips: []string{
			"Focus on clean melody execution",
			"Use simple triad voicings",
			"Maintain steady tempo",
			"Connect chord tones smoothly",
		},
	},
	{
		ID:          VariationSwing,
		Name:        "Swing",
		Description: "Broken chords with swing rhythm patterns",
		Tips: []string{
			"Emphasize the swing feel (long-short eighth notes)",
			"Use rootless voicings in left hand",
			"Try chord-melody approach",
			"Add syncopated rhythms",
		},
	},
	{
		ID:          VariationAdvanced,
		Name:        "Advanced",
		Description: "Arpeggiated patterns and creative voicings",
		Tips: []string{
			"Use extended harmonies (9ths, 11ths, 13ths)",
			"Try different inversions",
			"Experiment with stride left hand",
			"Add chord substitutions",
		},
	},
	{
		ID:          VariationCreative,
		Name:        "Creative",
		Description: "Reharmonization and personal interpretation",
		Tips: []string{
			"Try different key centers",
			"Experiment with modal approaches",
			"Add personal melodic variations",
			"Use contemporary harmony concepts",
		},
	},
}

// StandardFilter narrows a catalog listing. Empty fields match everything.
type StandardFilter struct {
	Difficulty Difficulty
	Query      string
	Style      string
}

// Standards returns a copy of the full catalog
func Standards() []Standard {
	out := make([]Standard, len(standards))
	copy(out, standards)
	return out
}

// StandardByID looks up a catalog entry
func StandardByID(id string) (Standard, bool) {
	for _, s := range standards {
		if s.ID == id {
			return s, true
		}
	}
	return Standard{}, false
}

// StandardByTitle looks up a catalog entry by title, ignoring case
func StandardByTitle(title string) (Standard, bool) {
	for _, s := range standards {
		if strings.EqualFold(s.Title, title) {
			return s, true
		}
	}
	return Standard{}, false
}

// IsKnownStandard reports whether id belongs to the catalog
func IsKnownStandard(id string) bool {
	_, ok := StandardByID(id)
	return ok
}

// SearchStandards matches the query against title, composer, style and key
func SearchStandards(query string) []Standard {
	term := strings.ToLower(strings.TrimSpace(query))
	var out []Standard
	for _, s := range standards {
		if strings.Contains(strings.ToLower(s.Title), term) ||
			strings.Contains(strings.ToLower(s.Composer), term) ||
			strings.Contains(strings.ToLower(s.Style), term) ||
			strings.Contains(strings.ToLower(s.Key), term) {
			out = append(out, s)
		}
	}
	return out
}

// FilterStandards applies search, difficulty and style filters in that order
func FilterStandards(f StandardFilter) []Standard {
	candidates := standards
	if f.Query != "" {
		candidates = SearchStandards(f.Query)
	}

	var out []Standard
	for _, s := range candidates {
		if f.Difficulty != "" && s.Difficulty != f.Difficulty {
			continue
		}
		if f.Style != "" && s.Style != f.Style {
			continue
		}
		out = append(out, s)
	}
	return out
}

// RandomStandard picks any catalog entry
func RandomStandard() Standard {
	return standards[rand.IntN(len(standards))]
}

// PracticeVariations returns the known practice variations
func PracticeVariations() []PracticeVariation {
	out := make([]PracticeVariation, len(practiceVariations))
	copy(out, practiceVariations)
	return out
}

// IsKnownVariation reports whether id names a practice variation
func IsKnownVariation(id string) bool {
	for _, v := range practiceVariations {
		if v.ID == id {
			return true
		}
	}
	return false
}

var (
	quotesPattern    = regexp.MustCompile(`['"]`)
	spacesPattern    = regexp.MustCompile(`\s+`)
	nonSlugCharacter = regexp.MustCompile(`[^a-z0-9-]`)
)

// RealbookURL returns the lead sheet page for a standard
func RealbookURL(s Standard) string {
	slug := strings.ToLower(s.Title)
	slug = quotesPattern.ReplaceAllString(slug, "")
	slug = spacesPattern.ReplaceAllString(slug, "-")
	slug = nonSlugCharacter.ReplaceAllString(slug, "")
	return "https://realbook.site/song/" + slug
}
