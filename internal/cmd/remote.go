package cmd

import (
	"context"
	"fmt"
	"maps"
	"slices"
)

// RemoteCmd inspects and refreshes the remote copy of the signed-in user's data
type RemoteCmd struct {
	Progress RemoteProgressCmd `cmd:"progress" help:"List progress documents held remotely" default:"1"`
	Push     RemotePushCmd     `cmd:"push" help:"Copy local preferences, progress and schedule to the remote store"`
	Reset    RemoteResetCmd    `cmd:"reset" help:"Delete the remote progress document of a standard"`
}

// RemoteProgressCmd lists remote progress
type RemoteProgressCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the progress command
func (r *RemoteProgressCmd) Run(c *Container) error {
	user, err := c.RequireUser()
	if err != nil {
		return err
	}

	docs, err := c.Remote.GetAllProgress(context.Background(), user.UserID)
	if err != nil {
		return fmt.Errorf("failed to read remote progress: %w", err)
	}

	if r.Format == "json" {
		return printJSON(docs)
	}
	if len(docs) == 0 {
		fmt.Println(c.Styles.Muted.Render("No remote progress for " + user.DisplayName))
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "STANDARD\tDONE\tUPDATED")
	for _, id := range slices.Sorted(maps.Keys(docs)) {
		doc := docs[id]
		updated := doc.UpdatedAt
		fmt.Fprintf(w, "%s\t%d%%\t%s\n", id, doc.Record.CompletionPercentage, formatTime(&updated))
	}
	return w.Flush()
}

// RemotePushCmd re-runs the local-to-remote copy
type RemotePushCmd struct{}

// Run executes the push command
func (r *RemotePushCmd) Run(c *Container) error {
	user, err := c.RequireUser()
	if err != nil {
		return err
	}

	report := c.Sync.Migrate(context.Background(), user.UserID)
	style := c.Styles.Done
	if !report.Complete() {
		style = c.Styles.Error
	}
	fmt.Println(style.Render(report.String()))
	for _, failure := range report.Failures {
		fmt.Println("  " + c.Styles.Muted.Render(failure.Item+": "+failure.Err.Error()))
	}
	return nil
}

// RemoteResetCmd deletes one remote progress document
type RemoteResetCmd struct {
	Standard string `arg:"" help:"Standard id or title"`
}

// Run executes the reset command
func (r *RemoteResetCmd) Run(c *Container) error {
	user, err := c.RequireUser()
	if err != nil {
		return err
	}
	std, err := resolveStandard(r.Standard)
	if err != nil {
		return err
	}

	if err := c.Remote.DeleteProgress(context.Background(), user.UserID, std.ID); err != nil {
		return fmt.Errorf("failed to reset remote progress: %w", err)
	}
	fmt.Printf("Remote progress for %s deleted; local progress is unchanged\n", std.Title)
	return nil
}
