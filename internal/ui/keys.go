package ui

import "github.com/charmbracelet/bubbles/key"

// PlannerKeys are the week planner's key bindings
type PlannerKeys struct {
	Delete   key.Binding
	Down     key.Binding
	Help     key.Binding
	NextDay  key.Binding
	NextWeek key.Binding
	PrevDay  key.Binding
	PrevWeek key.Binding
	Quit     key.Binding
	Today    key.Binding
	Toggle   key.Binding
	Up       key.Binding
}

// NewPlannerKeys returns the default bindings
func NewPlannerKeys() PlannerKeys {
	return PlannerKeys{
		Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete session")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next session")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		NextDay:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		NextWeek: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next week")),
		PrevDay:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
		PrevWeek: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous week")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "done / not done")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous session")),
	}
}

// ShortHelp implements help.KeyMap
func (k PlannerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k PlannerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Up, k.Down},
		{k.PrevWeek, k.NextWeek, k.Today},
		{k.Toggle, k.Delete},
		{k.Help, k.Quit},
	}
}
