package cmd

import (
	"fmt"
	"strings"

	"github.com/renato0307/shed/internal/domain"
)

// StandardsCmd browses the catalog
type StandardsCmd struct {
	List   StandardsListCmd   `cmd:"list" help:"List standards, optionally filtered" default:"1"`
	Random StandardsRandomCmd `cmd:"random" help:"Pick a random standard to practice"`
	Show   StandardsShowCmd   `cmd:"show" help:"Show a standard with its progress"`
}

// StandardsListCmd lists catalog entries
type StandardsListCmd struct {
	Difficulty string `help:"Only this difficulty (beginner, intermediate, advanced)"`
	Format     string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Search     string `help:"Match title, composer, style or key" short:"s"`
	Style      string `help:"Only this style (e.g. Swing, Bossa Nova)"`
}

// Run executes the list command
func (s *StandardsListCmd) Run(c *Container) error {
	standards := domain.FilterStandards(domain.StandardFilter{
		Difficulty: domain.Difficulty(s.Difficulty),
		Query:      s.Search,
		Style:      s.Style,
	})

	if s.Format == "json" {
		return printJSON(standards)
	}

	if len(standards) == 0 {
		fmt.Println(c.Styles.Muted.Render("No standards match."))
		return nil
	}

	progress := c.Sync.State().Progress
	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tCOMPOSER\tKEY\tSTYLE\tDIFFICULTY\tDONE")
	for _, std := range standards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d%%\n",
			std.ID, std.Title, std.Composer, std.Key, std.Style, std.Difficulty,
			progress[std.ID].CompletionPercentage)
	}
	return w.Flush()
}

// StandardsShowCmd shows one standard
type StandardsShowCmd struct {
	Open     bool   `help:"Open the lead sheet" short:"o"`
	Standard string `arg:"" help:"Standard id or title"`
}

// Run executes the show command
func (s *StandardsShowCmd) Run(c *Container) error {
	std, err := resolveStandard(s.Standard)
	if err != nil {
		return err
	}
	printStandard(c, std)

	if s.Open {
		return c.Launcher.Open(domain.RealbookURL(std))
	}
	return nil
}

// StandardsRandomCmd picks a standard
type StandardsRandomCmd struct{}

// Run executes the random command
func (s *StandardsRandomCmd) Run(c *Container) error {
	printStandard(c, domain.RandomStandard())
	return nil
}

func printStandard(c *Container, std domain.Standard) {
	st := c.Styles
	rec := c.Sync.State().ProgressFor(std.ID)

	fmt.Println(st.Title.Render(std.Title))
	fmt.Println(st.Label.Render("Id") + std.ID)
	fmt.Println(st.Label.Render("Composer") + std.Composer)
	fmt.Println(st.Label.Render("Key") + std.Key)
	fmt.Println(st.Label.Render("Time") + std.TimeSignature)
	fmt.Println(st.Label.Render("Style") + std.Style)
	fmt.Println(st.Label.Render("Difficulty") + string(std.Difficulty))
	fmt.Println(st.Label.Render("Changes") + std.ChordProgression)
	fmt.Println(st.Label.Render("Lead sheet") + domain.RealbookURL(std))
	fmt.Println(st.Label.Render("Progress") + fmt.Sprintf("%s %d%%", st.Bar(rec.CompletionPercentage), rec.CompletionPercentage))
	fmt.Println(st.Label.Render("Last practiced") + formatTime(rec.LastPracticed))
}

// resolveStandard accepts an id or a title
func resolveStandard(ref string) (domain.Standard, error) {
	if std, ok := domain.StandardByID(ref); ok {
		return std, nil
	}
	if std, ok := domain.StandardByTitle(strings.TrimSpace(ref)); ok {
		return std, nil
	}
	return domain.Standard{}, fmt.Errorf("%w: %s", domain.ErrUnknownStandard, ref)
}
