package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/services"
	"github.com/renato0307/shed/internal/ui"
)

// ScheduleCmd plans practice sessions
type ScheduleCmd struct {
	Add    ScheduleAddCmd    `cmd:"add" help:"Plan a session"`
	Day    ScheduleDayCmd    `cmd:"day" help:"Show the sessions of one day"`
	Del    ScheduleDelCmd    `cmd:"del" help:"Delete a session"`
	Edit   ScheduleEditCmd   `cmd:"edit" help:"Change a session"`
	Plan   SchedulePlanCmd   `cmd:"plan" help:"Browse the week interactively"`
	Toggle ScheduleToggleCmd `cmd:"toggle" help:"Mark a session done or not done"`
	Week   ScheduleWeekCmd   `cmd:"week" help:"Summarize a week" default:"1"`
}

// ScheduleWeekCmd summarizes Monday to Sunday
type ScheduleWeekCmd struct {
	Date   string `help:"Any day of the week to show (YYYY-MM-DD, defaults to today)"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the week command
func (s *ScheduleWeekCmd) Run(c *Container) error {
	day := time.Now()
	if s.Date != "" {
		var err error
		if day, err = domain.ParseDateKey(s.Date); err != nil {
			return err
		}
	}

	week := c.Schedule.Week(day)
	if s.Format == "json" {
		return printJSON(week)
	}

	today := domain.DateKey(time.Now())
	w := newTable()
	fmt.Fprintln(w, "DAY\tDATE\tSESSIONS\tDONE\tMINUTES")
	for _, summary := range week {
		date, _ := domain.ParseDateKey(summary.DateKey)
		label := date.Weekday().String()[:3]
		if summary.DateKey == today {
			label = c.Styles.Subtitle.Render(label)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", label, summary.DateKey, summary.Sessions, summary.Completed, summary.TotalMinutes)
	}
	return w.Flush()
}

// SchedulePlanCmd opens the interactive week planner
type SchedulePlanCmd struct {
	Date string `help:"Any day of the week to open (YYYY-MM-DD, defaults to today)"`
}

// Run executes the plan command
func (s *SchedulePlanCmd) Run(c *Container) error {
	now := time.Now()
	day := now
	if s.Date != "" {
		var err error
		if day, err = domain.ParseDateKey(s.Date); err != nil {
			return err
		}
	}
	if !stdinIsTerminal() {
		return errors.New("the planner needs a terminal; use schedule week or schedule day instead")
	}

	p := tea.NewProgram(
		ui.NewWeekPlanner(context.Background(), c.Schedule, c.Styles, day, now),
		tea.WithAltScreen(),
	)

	logging.Logger.Info("Starting week planner", "date", domain.DateKey(day))
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Week planner error", "error", err)
		return fmt.Errorf("error running planner: %w", err)
	}
	return nil
}

// ScheduleDayCmd lists one day
type ScheduleDayCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Date   string `arg:"" optional:"" help:"Date (YYYY-MM-DD, defaults to today)"`
}

// Run executes the day command
func (s *ScheduleDayCmd) Run(c *Container) error {
	date := s.Date
	if date == "" {
		date = domain.DateKey(time.Now())
	}

	sessions, err := c.Schedule.Day(date)
	if err != nil {
		return err
	}
	if s.Format == "json" {
		return printJSON(sessions)
	}

	fmt.Println(c.Styles.Title.Render(date))
	if len(sessions) == 0 {
		fmt.Println(c.Styles.Muted.Render("Nothing planned."))
		return nil
	}
	printSessions(c, sessions)
	return nil
}

// ScheduleAddCmd plans a session
type ScheduleAddCmd struct {
	Duration int    `help:"Minutes (5-180)" default:"30"`
	Focus    string `help:"What to work on"`
	Notes    string `help:"Free-text notes"`

	Date     string `arg:"" help:"Date (YYYY-MM-DD)"`
	Standard string `arg:"" help:"Standard id or title"`
}

// Run executes the add command
func (s *ScheduleAddCmd) Run(c *Container) error {
	std, err := resolveStandard(s.Standard)
	if err != nil {
		return err
	}

	session, err := c.Schedule.AddSession(context.Background(), s.Date, domain.ScheduleSession{
		Duration:   s.Duration,
		Focus:      s.Focus,
		Notes:      s.Notes,
		StandardID: std.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to add session: %w", err)
	}
	fmt.Printf("Planned %d minutes of %s on %s (session %s)\n", session.Duration, std.Title, s.Date, session.ID)
	return nil
}

// ScheduleEditCmd changes a session. Unset flags are left untouched.
type ScheduleEditCmd struct {
	Duration int    `help:"Minutes (5-180)"`
	Focus    string `help:"What to work on"`
	Notes    string `help:"Free-text notes"`
	Standard string `help:"Standard id or title"`

	Date string `arg:"" help:"Date (YYYY-MM-DD)"`
	ID   string `arg:"" help:"Session id"`
}

// Run executes the edit command
func (s *ScheduleEditCmd) Run(c *Container) error {
	var patch services.SessionPatch
	if s.Duration != 0 {
		patch.Duration = &s.Duration
	}
	if s.Focus != "" {
		patch.Focus = &s.Focus
	}
	if s.Notes != "" {
		patch.Notes = &s.Notes
	}
	if s.Standard != "" {
		std, err := resolveStandard(s.Standard)
		if err != nil {
			return err
		}
		patch.StandardID = &std.ID
	}

	session, err := c.Schedule.EditSession(context.Background(), s.Date, s.ID, patch)
	if err != nil {
		return fmt.Errorf("failed to edit session: %w", err)
	}
	printSessions(c, []domain.ScheduleSession{session})
	return nil
}

// ScheduleToggleCmd flips completion
type ScheduleToggleCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD)"`
	ID   string `arg:"" help:"Session id"`
}

// Run executes the toggle command
func (s *ScheduleToggleCmd) Run(c *Container) error {
	session, err := c.Schedule.ToggleSession(context.Background(), s.Date, s.ID)
	if err != nil {
		return fmt.Errorf("failed to toggle session: %w", err)
	}
	printSessions(c, []domain.ScheduleSession{session})
	return nil
}

// ScheduleDelCmd deletes a session
type ScheduleDelCmd struct {
	Date string `arg:"" help:"Date (YYYY-MM-DD)"`
	ID   string `arg:"" help:"Session id"`
}

// Run executes the del command
func (s *ScheduleDelCmd) Run(c *Container) error {
	if err := c.Schedule.DeleteSession(context.Background(), s.Date, s.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	fmt.Printf("Session %s deleted\n", s.ID)
	return nil
}

func printSessions(c *Container, sessions []domain.ScheduleSession) {
	w := newTable()
	for _, session := range sessions {
		title := session.StandardID
		if std, ok := domain.StandardByID(session.StandardID); ok {
			title = std.Title
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dm\t%s\n",
			c.Styles.Check(session.Completed), c.Styles.Muted.Render(session.ID), title, session.Duration, session.Focus)
	}
	w.Flush()
}
