package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/shed/internal/domain"
)

// RecordingsCmd manages the recordings held in a standard's progress record
type RecordingsCmd struct {
	Add  RecordingsAddCmd  `cmd:"add" help:"Attach a recording to a standard"`
	Del  RecordingsDelCmd  `cmd:"del" help:"Remove a recording from a standard"`
	List RecordingsListCmd `cmd:"list" help:"List a standard's recordings" default:"withargs"`
}

// RecordingsListCmd lists both buckets
type RecordingsListCmd struct {
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Standard string `arg:"" help:"Standard id or title"`
}

// Run executes the list command
func (r *RecordingsListCmd) Run(c *Container) error {
	std, err := resolveStandard(r.Standard)
	if err != nil {
		return err
	}
	rec, err := c.Progress.Get(context.Background(), std.ID)
	if err != nil {
		return err
	}

	if r.Format == "json" {
		return printJSON(rec.Recordings)
	}

	fmt.Println(c.Styles.Title.Render(std.Title))
	printRecordings(c, rec.Recordings.Reference)
	printRecordings(c, rec.Recordings.Personal)
	return nil
}

// RecordingsAddCmd attaches a recording
type RecordingsAddCmd struct {
	Artist      string `help:"Performer (reference recordings)"`
	Description string `help:"Free-text description"`
	File        string `help:"File reference (personal takes)"`
	Type        string `help:"reference or personal" enum:"reference,personal" default:"reference"`
	URL         string `help:"Link to the recording"`

	Standard string `arg:"" help:"Standard id or title"`
}

// Run executes the add command
func (r *RecordingsAddCmd) Run(c *Container) error {
	std, err := resolveStandard(r.Standard)
	if err != nil {
		return err
	}

	added, err := c.Progress.AddRecording(context.Background(), std.ID, domain.Recording{
		Artist:      r.Artist,
		Description: r.Description,
		FileRef:     r.File,
		Filename:    baseName(r.File),
		Type:        domain.RecordingType(r.Type),
		URL:         r.URL,
	})
	if err != nil {
		return fmt.Errorf("failed to add recording: %w", err)
	}

	fmt.Printf("Added %s recording %d to %s\n", added.Type, added.ID, std.Title)
	return nil
}

// RecordingsDelCmd removes a recording
type RecordingsDelCmd struct {
	Type string `help:"reference or personal" enum:"reference,personal" default:"reference"`

	Standard string `arg:"" help:"Standard id or title"`
	ID       int64  `arg:"" help:"Recording id"`
}

// Run executes the del command
func (r *RecordingsDelCmd) Run(c *Container) error {
	std, err := resolveStandard(r.Standard)
	if err != nil {
		return err
	}
	if err := c.Progress.DeleteRecording(context.Background(), std.ID, domain.RecordingType(r.Type), r.ID); err != nil {
		return fmt.Errorf("failed to delete recording: %w", err)
	}
	fmt.Printf("Deleted %s recording %d from %s\n", r.Type, r.ID, std.Title)
	return nil
}

func printRecordings(c *Container, recs []domain.Recording) {
	w := newTable()
	for _, rec := range recs {
		source := rec.URL
		if source == "" {
			source = rec.FileRef
		}
		who := rec.Artist
		if who == "" {
			who = rec.Filename
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", rec.ID, c.Styles.Muted.Render(string(rec.Type)), who, source, rec.Description)
	}
	w.Flush()
}
