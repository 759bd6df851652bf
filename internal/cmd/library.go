package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/renato0307/shed/internal/domain"
)

// LibraryCmd browses the indexed recordings and notes collections
type LibraryCmd struct {
	Notes      LibraryNotesCmd      `cmd:"notes" help:"Dated practice notes"`
	Recordings LibraryRecordingsCmd `cmd:"recordings" help:"Recordings library"`
}

// LibraryRecordingsCmd manages library recordings
type LibraryRecordingsCmd struct {
	Add  LibraryRecordingsAddCmd  `cmd:"add" help:"Add a recording to the library"`
	Del  LibraryRecordingsDelCmd  `cmd:"del" help:"Delete a library recording"`
	List LibraryRecordingsListCmd `cmd:"list" help:"List a standard's library recordings" default:"withargs"`
}

// LibraryRecordingsListCmd lists recordings by standard
type LibraryRecordingsListCmd struct {
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Type     string `help:"Only reference or personal recordings"`
	Standard string `arg:"" help:"Standard id or title"`
}

// Run executes the list command
func (l *LibraryRecordingsListCmd) Run(c *Container) error {
	std, err := resolveStandard(l.Standard)
	if err != nil {
		return err
	}

	var recType domain.RecordingType
	if l.Type != "" {
		if recType, err = domain.ParseRecordingType(l.Type); err != nil {
			return err
		}
	}

	recs, err := c.Library.Recordings(context.Background(), std.ID, recType)
	if err != nil {
		return fmt.Errorf("failed to list recordings: %w", err)
	}

	if l.Format == "json" {
		return printJSON(recs)
	}
	if len(recs) == 0 {
		fmt.Println(c.Styles.Muted.Render("No recordings in the library for " + std.Title))
		return nil
	}
	printRecordings(c, recs)
	return nil
}

// LibraryRecordingsAddCmd adds a recording
type LibraryRecordingsAddCmd struct {
	Artist      string `help:"Performer (reference recordings)"`
	Description string `help:"Free-text description"`
	File        string `help:"File reference (personal takes)"`
	Type        string `help:"reference or personal" enum:"reference,personal" default:"reference"`
	URL         string `help:"Link to the recording"`

	Standard string `arg:"" help:"Standard id or title"`
}

// Run executes the add command
func (l *LibraryRecordingsAddCmd) Run(c *Container) error {
	std, err := resolveStandard(l.Standard)
	if err != nil {
		return err
	}

	added, err := c.Library.AddRecording(context.Background(), domain.Recording{
		Artist:      l.Artist,
		Description: l.Description,
		FileRef:     l.File,
		Filename:    baseName(l.File),
		StandardID:  std.ID,
		Type:        domain.RecordingType(l.Type),
		URL:         l.URL,
	})
	if err != nil {
		return fmt.Errorf("failed to add recording: %w", err)
	}
	fmt.Printf("Library recording %d added to %s\n", added.ID, std.Title)
	return nil
}

// LibraryRecordingsDelCmd deletes a recording
type LibraryRecordingsDelCmd struct {
	ID int64 `arg:"" help:"Recording id"`
}

// Run executes the del command
func (l *LibraryRecordingsDelCmd) Run(c *Container) error {
	if err := c.Library.DeleteRecording(context.Background(), l.ID); err != nil {
		return fmt.Errorf("failed to delete recording: %w", err)
	}
	fmt.Printf("Library recording %d deleted\n", l.ID)
	return nil
}

// LibraryNotesCmd manages dated notes
type LibraryNotesCmd struct {
	Add  LibraryNotesAddCmd  `cmd:"add" help:"Add a note dated now"`
	Day  LibraryNotesDayCmd  `cmd:"day" help:"List the notes written on one day"`
	Del  LibraryNotesDelCmd  `cmd:"del" help:"Delete a note"`
	List LibraryNotesListCmd `cmd:"list" help:"List a standard's notes, newest first" default:"withargs"`
}

// LibraryNotesListCmd lists notes
type LibraryNotesListCmd struct {
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Standard string `arg:"" help:"Standard id or title"`
}

// Run executes the list command
func (l *LibraryNotesListCmd) Run(c *Container) error {
	std, err := resolveStandard(l.Standard)
	if err != nil {
		return err
	}
	notes, err := c.Library.Notes(context.Background(), std.ID)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if l.Format == "json" {
		return printJSON(notes)
	}
	if len(notes) == 0 {
		fmt.Println(c.Styles.Muted.Render("No notes for " + std.Title))
		return nil
	}

	return printNotes(c, notes, false)
}

// LibraryNotesDayCmd lists notes across standards for one UTC day
type LibraryNotesDayCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Date   string `arg:"" optional:"" help:"Date (YYYY-MM-DD, defaults to today in UTC)"`
}

// Run executes the day command
func (l *LibraryNotesDayCmd) Run(c *Container) error {
	date := l.Date
	if date == "" {
		date = domain.DateKey(time.Now().UTC())
	}

	notes, err := c.Library.NotesOn(context.Background(), date)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if l.Format == "json" {
		return printJSON(notes)
	}
	if len(notes) == 0 {
		fmt.Println(c.Styles.Muted.Render("No notes on " + date))
		return nil
	}
	return printNotes(c, notes, true)
}

func printNotes(c *Container, notes []domain.Note, withStandard bool) error {
	w := newTable()
	for _, n := range notes {
		date := n.Date
		if withStandard {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", n.ID, c.Styles.Muted.Render(formatTime(&date)), n.StandardID, n.Content)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", n.ID, c.Styles.Muted.Render(formatTime(&date)), n.Content)
	}
	return w.Flush()
}

// LibraryNotesAddCmd adds a note
type LibraryNotesAddCmd struct {
	Standard string   `arg:"" help:"Standard id or title"`
	Content  []string `arg:"" help:"Note text"`
}

// Run executes the add command
func (l *LibraryNotesAddCmd) Run(c *Container) error {
	std, err := resolveStandard(l.Standard)
	if err != nil {
		return err
	}
	note, err := c.Library.AddNote(context.Background(), std.ID, strings.Join(l.Content, " "))
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}
	fmt.Printf("Note %d added to %s\n", note.ID, std.Title)
	return nil
}

// LibraryNotesDelCmd deletes a note
type LibraryNotesDelCmd struct {
	ID int64 `arg:"" help:"Note id"`
}

// Run executes the del command
func (l *LibraryNotesDelCmd) Run(c *Container) error {
	if err := c.Library.DeleteNote(context.Background(), l.ID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	fmt.Printf("Note %d deleted\n", l.ID)
	return nil
}

func baseName(ref string) string {
	if ref == "" {
		return ""
	}
	return filepath.Base(ref)
}
