package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/theme"
)

// WeekSchedule is the part of the schedule service the planner drives
type WeekSchedule interface {
	Day(dateKey string) ([]domain.ScheduleSession, error)
	DeleteSession(ctx context.Context, dateKey, id string) error
	ToggleSession(ctx context.Context, dateKey, id string) (domain.ScheduleSession, error)
	Week(t time.Time) []domain.DaySummary
}

type plannerState int

const (
	stateBrowsing plannerState = iota
	stateConfirmingDelete
)

// WeekPlanner is an interactive Monday-to-Sunday view of the schedule
type WeekPlanner struct {
	ctx      context.Context
	cursor   int
	day      int // 0 is Monday
	err      error
	help     help.Model
	keys     PlannerKeys
	monday   time.Time
	schedule WeekSchedule
	sessions []domain.ScheduleSession
	state    plannerState
	status   string
	styles   theme.Styles
	today    time.Time
	week     []domain.DaySummary
}

// NewWeekPlanner opens the week containing day with day selected
func NewWeekPlanner(ctx context.Context, schedule WeekSchedule, styles theme.Styles, day, today time.Time) *WeekPlanner {
	p := &WeekPlanner{
		ctx:      ctx,
		help:     help.New(),
		keys:     NewPlannerKeys(),
		schedule: schedule,
		styles:   styles,
		today:    today,
	}
	p.jumpTo(day)
	return p
}

func (p *WeekPlanner) Init() tea.Cmd {
	return nil
}

func (p *WeekPlanner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.help.Width = msg.Width
		return p, nil
	case tea.KeyMsg:
		if p.state == stateConfirmingDelete {
			return p.updateConfirmingDelete(msg)
		}
		return p.updateBrowsing(msg)
	}
	return p, nil
}

func (p *WeekPlanner) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p.err = nil
	p.status = ""

	switch {
	case key.Matches(msg, p.keys.Quit):
		return p, tea.Quit
	case key.Matches(msg, p.keys.Help):
		p.help.ShowAll = !p.help.ShowAll
	case key.Matches(msg, p.keys.PrevDay):
		p.moveDay(-1)
	case key.Matches(msg, p.keys.NextDay):
		p.moveDay(1)
	case key.Matches(msg, p.keys.PrevWeek):
		p.monday = p.monday.AddDate(0, 0, -7)
		p.reload()
	case key.Matches(msg, p.keys.NextWeek):
		p.monday = p.monday.AddDate(0, 0, 7)
		p.reload()
	case key.Matches(msg, p.keys.Today):
		p.jumpTo(p.today)
	case key.Matches(msg, p.keys.Up):
		p.cursor = max(p.cursor-1, 0)
	case key.Matches(msg, p.keys.Down):
		p.cursor = min(p.cursor+1, max(len(p.sessions)-1, 0))
	case key.Matches(msg, p.keys.Toggle):
		p.toggleSelected()
	case key.Matches(msg, p.keys.Delete):
		if _, ok := p.selected(); ok {
			p.state = stateConfirmingDelete
		}
	}
	return p, nil
}

func (p *WeekPlanner) updateConfirmingDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p.state = stateBrowsing
	if msg.String() != "y" {
		p.status = "Delete cancelled"
		return p, nil
	}

	session, ok := p.selected()
	if !ok {
		return p, nil
	}
	if err := p.schedule.DeleteSession(p.ctx, p.dateKey(), session.ID); err != nil {
		logging.Logger.Error("Failed to delete session", "date", p.dateKey(), "id", session.ID, "error", err)
		p.err = err
		return p, nil
	}
	p.status = "Deleted " + standardTitle(session.StandardID)
	p.reload()
	return p, nil
}

func (p *WeekPlanner) toggleSelected() {
	session, ok := p.selected()
	if !ok {
		return
	}
	updated, err := p.schedule.ToggleSession(p.ctx, p.dateKey(), session.ID)
	if err != nil {
		logging.Logger.Error("Failed to toggle session", "date", p.dateKey(), "id", session.ID, "error", err)
		p.err = err
		return
	}
	if updated.Completed {
		p.status = "Done: " + standardTitle(updated.StandardID)
	} else {
		p.status = "Reopened: " + standardTitle(updated.StandardID)
	}
	p.reload()
}

// moveDay steps one day, crossing into the neighbouring week at the edges
func (p *WeekPlanner) moveDay(delta int) {
	p.day += delta
	switch {
	case p.day < 0:
		p.monday = p.monday.AddDate(0, 0, -7)
		p.day = 6
	case p.day > 6:
		p.monday = p.monday.AddDate(0, 0, 7)
		p.day = 0
	}
	p.cursor = 0
	p.reload()
}

func (p *WeekPlanner) jumpTo(day time.Time) {
	keys := domain.WeekDateKeys(day)
	p.monday, _ = domain.ParseDateKey(keys[0])
	p.day = (int(day.Weekday()) + 6) % 7
	p.cursor = 0
	p.reload()
}

func (p *WeekPlanner) reload() {
	p.week = p.schedule.Week(p.monday)
	p.sessions, p.err = p.schedule.Day(p.dateKey())
	p.cursor = min(p.cursor, max(len(p.sessions)-1, 0))
}

func (p *WeekPlanner) dateKey() string {
	return domain.DateKey(p.monday.AddDate(0, 0, p.day))
}

func (p *WeekPlanner) selected() (domain.ScheduleSession, bool) {
	if p.cursor >= len(p.sessions) {
		return domain.ScheduleSession{}, false
	}
	return p.sessions[p.cursor], true
}

func (p *WeekPlanner) View() string {
	st := p.styles
	var b strings.Builder

	b.WriteString(st.Title.Render("Week of " + domain.DateKey(p.monday)))
	b.WriteString("\n")

	todayKey := domain.DateKey(p.today)
	tabs := make([]string, 0, len(p.week))
	for i, summary := range p.week {
		date, _ := domain.ParseDateKey(summary.DateKey)
		label := fmt.Sprintf("%s %d  %d/%d", date.Weekday().String()[:3], date.Day(), summary.Completed, summary.Sessions)
		switch {
		case i == p.day:
			label = st.Subtitle.Render("[" + label + "]")
		case summary.DateKey == todayKey:
			label = st.Normal.Render(" " + label + " ")
		default:
			label = st.Muted.Render(" " + label + " ")
		}
		tabs = append(tabs, label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if p.day < len(p.week) {
		summary := p.week[p.day]
		b.WriteString(st.Subtitle.Render(summary.DateKey))
		b.WriteString(st.Muted.Render(fmt.Sprintf("  %d min planned", summary.TotalMinutes)))
		b.WriteString("\n")
	}

	if len(p.sessions) == 0 {
		b.WriteString(st.Muted.Render("Nothing planned."))
		b.WriteString("\n")
	}
	for i, session := range p.sessions {
		pointer := "  "
		if i == p.cursor {
			pointer = st.Subtitle.Render("> ")
		}
		line := fmt.Sprintf("%s%s %-28s %4dm  %s", pointer, st.Check(session.Completed), standardTitle(session.StandardID), session.Duration, session.Focus)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case p.state == stateConfirmingDelete:
		b.WriteString(st.Error.Render("Delete this session? (y/n)"))
	case p.err != nil:
		b.WriteString(st.Error.Render(p.err.Error()))
	case p.status != "":
		b.WriteString(st.Done.Render(p.status))
	}
	b.WriteString("\n")
	b.WriteString(p.help.View(p.keys))
	return b.String()
}

func standardTitle(id string) string {
	if std, ok := domain.StandardByID(id); ok {
		return std.Title
	}
	return id
}
