package domain

import "fmt"

// Theme values
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// View modes for catalog listings
const (
	ViewModeGrid = "grid"
	ViewModeList = "list"
)

// Preferences is an immutable snapshot of user settings
type Preferences struct {
	AutoSave                 bool   `json:"autoSave"`
	DefaultPracticeVariation string `json:"defaultPracticeVariation"`
	Notifications            bool   `json:"notifications"`
	Theme                    string `json:"theme"`
	ViewMode                 string `json:"viewMode"`
}

// DefaultPreferences returns the built-in defaults
func DefaultPreferences() Preferences {
	return Preferences{
		AutoSave:                 true,
		DefaultPracticeVariation: VariationBasic,
		Notifications:            true,
		Theme:                    ThemeLight,
		ViewMode:                 ViewModeGrid,
	}
}

// PreferencesPatch carries the fields to change; nil means untouched
type PreferencesPatch struct {
	AutoSave                 *bool
	DefaultPracticeVariation *string
	Notifications            *bool
	Theme                    *string
	ViewMode                 *string
}

// IsEmpty reports whether the patch changes nothing
func (p PreferencesPatch) IsEmpty() bool {
	return p.AutoSave == nil && p.DefaultPracticeVariation == nil && p.Notifications == nil &&
		p.Theme == nil && p.ViewMode == nil
}

// Validate rejects values outside the known sets
func (p PreferencesPatch) Validate() error {
	if p.Theme != nil && *p.Theme != ThemeLight && *p.Theme != ThemeDark {
		return &ValidationError{Field: "theme", Reason: fmt.Sprintf("%q is not one of light, dark", *p.Theme)}
	}
	if p.DefaultPracticeVariation != nil && !IsKnownVariation(*p.DefaultPracticeVariation) {
		return &ValidationError{Field: "defaultPracticeVariation", Reason: fmt.Sprintf("unknown variation %q", *p.DefaultPracticeVariation)}
	}
	if p.ViewMode != nil && *p.ViewMode != ViewModeGrid && *p.ViewMode != ViewModeList {
		return &ValidationError{Field: "viewMode", Reason: fmt.Sprintf("%q is not one of grid, list", *p.ViewMode)}
	}
	return nil
}

// Apply returns a new snapshot with the patch merged in
func (p Preferences) Apply(patch PreferencesPatch) Preferences {
	if patch.AutoSave != nil {
		p.AutoSave = *patch.AutoSave
	}
	if patch.DefaultPracticeVariation != nil {
		p.DefaultPracticeVariation = *patch.DefaultPracticeVariation
	}
	if patch.Notifications != nil {
		p.Notifications = *patch.Notifications
	}
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.ViewMode != nil {
		p.ViewMode = *patch.ViewMode
	}
	return p
}
