package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Palette is the set of colors one theme renders with
type Palette struct {
	Done      Color // Completed checklist items and sessions
	Error     Color
	Highlight Color // Emphasis
	Muted     Color // Secondary text
	Normal    Color
	Pending   Color // Unchecked items and open sessions
	Primary   Color // App name, titles
	Progress  Color // Completion bars
	Secondary Color // Subtitles
	Subtle    Color // Labels
}

// DarkPalette is used when the theme preference is dark
var DarkPalette = Palette{
	Done:      "2",   // Green
	Error:     "196", // Bright red
	Highlight: "255", // White
	Muted:     "241", // Gray
	Normal:    "250",
	Pending:   "3",  // Yellow
	Primary:   "99", // Purple
	Progress:  "141",
	Secondary: "86", // Cyan
	Subtle:    "245",
}

// LightPalette is used when the theme preference is light
var LightPalette = Palette{
	Done:      "28",  // Dark green
	Error:     "160", // Dark red
	Highlight: "232", // Near black
	Muted:     "244",
	Normal:    "236",
	Pending:   "130", // Brown
	Primary:   "55",  // Deep purple
	Progress:  "93",
	Secondary: "30", // Teal
	Subtle:    "240",
}
