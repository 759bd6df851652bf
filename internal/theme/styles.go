package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/shed/internal/domain"
)

// BarWidth is the number of cells in a completion bar
const BarWidth = 20

// Styles holds every style the CLI output uses
type Styles struct {
	Banner   lipgloss.Style
	Done     lipgloss.Style
	Error    lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Pending  lipgloss.Style
	Progress lipgloss.Style
	Subtitle lipgloss.Style
	Title    lipgloss.Style
}

// NewStyles builds the styles for a palette
func NewStyles(p Palette) Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Error).
			Padding(0, 1),

		Done: lipgloss.NewStyle().
			Foreground(p.Done),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Width(16),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		Normal: lipgloss.NewStyle().
			Foreground(p.Normal),

		Pending: lipgloss.NewStyle().
			Foreground(p.Pending),

		Progress: lipgloss.NewStyle().
			Foreground(p.Progress),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),
	}
}

// ForTheme returns the styles matching a theme preference value.
// Anything other than light renders dark.
func ForTheme(name string) Styles {
	if name == domain.ThemeLight {
		return NewStyles(LightPalette)
	}
	return NewStyles(DarkPalette)
}

// Bar renders a completion percentage as a fixed-width bar
func (s Styles) Bar(percent int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * BarWidth / 100
	return s.Progress.Render(strings.Repeat("█", filled)) +
		s.Muted.Render(strings.Repeat("░", BarWidth-filled))
}

// Check renders a done/pending marker
func (s Styles) Check(done bool) string {
	if done {
		return s.Done.Render("✓")
	}
	return s.Pending.Render("○")
}
