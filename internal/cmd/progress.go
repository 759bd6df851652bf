package cmd

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/renato0307/shed/internal/domain"
)

// ProgressCmd tracks per-standard practice progress
type ProgressCmd struct {
	List      ProgressListCmd      `cmd:"list" help:"List standards with recorded progress" default:"1"`
	Notes     ProgressNotesCmd     `cmd:"notes" help:"Replace a standard's practice notes"`
	Practiced ProgressPracticedCmd `cmd:"practiced" help:"Record that a standard was practiced"`
	Show      ProgressShowCmd      `cmd:"show" help:"Show the checklist of a standard"`
	Stats     ProgressStatsCmd     `cmd:"stats" help:"Summarize progress across the catalog"`
	Toggle    ProgressToggleCmd    `cmd:"toggle" help:"Toggle a checklist item"`
}

// ProgressListCmd lists stored progress records
type ProgressListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (p *ProgressListCmd) Run(c *Container) error {
	all, err := c.Progress.All(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list progress: %w", err)
	}

	if p.Format == "json" {
		return printJSON(all)
	}

	if len(all) == 0 {
		fmt.Println(c.Styles.Muted.Render("No progress yet. Try 'shed progress toggle <standard> melody'."))
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "STANDARD\tPROGRESS\tDONE\tLAST PRACTICED")
	for _, id := range slices.Sorted(maps.Keys(all)) {
		rec := all[id]
		title := id
		if std, ok := domain.StandardByID(id); ok {
			title = std.Title
		}
		fmt.Fprintf(w, "%s\t%s\t%d%%\t%s\n", title, c.Styles.Bar(rec.CompletionPercentage), rec.CompletionPercentage, formatTime(rec.LastPracticed))
	}
	return w.Flush()
}

// ProgressShowCmd shows one record
type ProgressShowCmd struct {
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Standard string `arg:"" help:"Standard id or title"`
}

// Run executes the show command
func (p *ProgressShowCmd) Run(c *Container) error {
	std, err := resolveStandard(p.Standard)
	if err != nil {
		return err
	}
	rec, err := c.Progress.Get(context.Background(), std.ID)
	if err != nil {
		return err
	}

	if p.Format == "json" {
		return printJSON(rec)
	}
	printProgress(c, std, rec)
	return nil
}

// ProgressToggleCmd flips a checklist item
type ProgressToggleCmd struct {
	Standard string `arg:"" help:"Standard id or title"`
	Item     string `arg:"" help:"Checklist item id (recordings, melody, chords, hands-together, memorized, recorded, creative)"`
}

// Run executes the toggle command
func (p *ProgressToggleCmd) Run(c *Container) error {
	std, err := resolveStandard(p.Standard)
	if err != nil {
		return err
	}
	rec, err := c.Progress.ToggleChecklistItem(context.Background(), std.ID, p.Item)
	if err != nil {
		return fmt.Errorf("failed to toggle %s: %w", p.Item, err)
	}
	printProgress(c, std, rec)
	return nil
}

// ProgressNotesCmd replaces notes
type ProgressNotesCmd struct {
	Standard string   `arg:"" help:"Standard id or title"`
	Notes    []string `arg:"" optional:"" help:"New notes text (empty clears)"`
}

// Run executes the notes command
func (p *ProgressNotesCmd) Run(c *Container) error {
	std, err := resolveStandard(p.Standard)
	if err != nil {
		return err
	}
	if _, err := c.Progress.SetNotes(context.Background(), std.ID, strings.Join(p.Notes, " ")); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	fmt.Printf("Notes saved for %s\n", std.Title)
	return nil
}

// ProgressPracticedCmd stamps lastPracticed
type ProgressPracticedCmd struct {
	Date     string `help:"Practice date (YYYY-MM-DD, defaults to now)"`
	Standard string `arg:"" help:"Standard id or title"`
}

// Run executes the practiced command
func (p *ProgressPracticedCmd) Run(c *Container) error {
	std, err := resolveStandard(p.Standard)
	if err != nil {
		return err
	}

	var at time.Time
	if p.Date != "" {
		if at, err = domain.ParseDateKey(p.Date); err != nil {
			return err
		}
	}

	rec, err := c.Progress.MarkPracticed(context.Background(), std.ID, at)
	if err != nil {
		return fmt.Errorf("failed to record practice: %w", err)
	}
	fmt.Printf("%s last practiced %s\n", std.Title, formatTime(rec.LastPracticed))
	return nil
}

// ProgressStatsCmd summarizes progress
type ProgressStatsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the stats command
func (p *ProgressStatsCmd) Run(c *Container) error {
	stats, err := c.Progress.Stats(context.Background())
	if err != nil {
		return err
	}

	if p.Format == "json" {
		return printJSON(stats)
	}

	st := c.Styles
	notStarted := stats.Total - stats.Completed - stats.InProgress
	fmt.Println(st.Title.Render("Practice progress"))
	fmt.Println(st.Label.Render("Completed") + st.Done.Render(fmt.Sprint(stats.Completed)))
	fmt.Println(st.Label.Render("In progress") + st.Pending.Render(fmt.Sprint(stats.InProgress)))
	fmt.Println(st.Label.Render("Not started") + st.Muted.Render(fmt.Sprint(notStarted)))
	fmt.Println(st.Label.Render("Catalog") + fmt.Sprint(stats.Total))
	return nil
}

func printProgress(c *Container, std domain.Standard, rec domain.ProgressRecord) {
	st := c.Styles
	fmt.Println(st.Title.Render(std.Title))
	for _, item := range domain.ChecklistItems() {
		fmt.Printf("  %s %s %s\n", st.Check(rec.Checklist[item.ID]), item.Label, st.Muted.Render("("+item.ID+")"))
	}
	fmt.Println()
	fmt.Println(st.Label.Render("Progress") + fmt.Sprintf("%s %d%%", st.Bar(rec.CompletionPercentage), rec.CompletionPercentage))
	fmt.Println(st.Label.Render("Last practiced") + formatTime(rec.LastPracticed))
	fmt.Println(st.Label.Render("Recordings") + fmt.Sprintf("%d reference, %d personal", len(rec.Recordings.Reference), len(rec.Recordings.Personal)))
	if rec.Notes != "" {
		fmt.Println(st.Label.Render("Notes") + rec.Notes)
	}
}
