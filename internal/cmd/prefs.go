package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/renato0307/shed/internal/domain"
)

// PrefsCmd manages preferences
type PrefsCmd struct {
	Set  PrefsSetCmd  `cmd:"set" help:"Change one or more preferences"`
	Show PrefsShowCmd `cmd:"show" help:"Show current preferences" default:"1"`
}

// PrefsShowCmd prints preferences
type PrefsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (p *PrefsShowCmd) Run(c *Container) error {
	prefs := c.Sync.State().Preferences
	if p.Format == "json" {
		return printJSON(prefs)
	}
	printPreferences(c, prefs)
	return nil
}

// PrefsSetCmd patches preferences. Unset flags are left untouched.
type PrefsSetCmd struct {
	AutoSave      string `help:"true or false"`
	Notifications string `help:"true or false"`
	Theme         string `help:"light or dark"`
	Variation     string `help:"Default practice variation (basic, swing, creative, advanced)"`
	ViewMode      string `help:"grid or list"`
}

// Run executes the set command
func (p *PrefsSetCmd) Run(c *Container) error {
	patch, err := p.patch()
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return errors.New("nothing to change (see 'shed prefs set --help')")
	}

	prefs, err := c.Sync.UpdatePreferences(context.Background(), patch)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	printPreferences(c, prefs)
	return nil
}

func (p *PrefsSetCmd) patch() (domain.PreferencesPatch, error) {
	var patch domain.PreferencesPatch

	if p.AutoSave != "" {
		v, err := strconv.ParseBool(p.AutoSave)
		if err != nil {
			return patch, &domain.ValidationError{Field: "autoSave", Reason: fmt.Sprintf("%q is not true or false", p.AutoSave)}
		}
		patch.AutoSave = &v
	}
	if p.Notifications != "" {
		v, err := strconv.ParseBool(p.Notifications)
		if err != nil {
			return patch, &domain.ValidationError{Field: "notifications", Reason: fmt.Sprintf("%q is not true or false", p.Notifications)}
		}
		patch.Notifications = &v
	}
	if p.Theme != "" {
		patch.Theme = &p.Theme
	}
	if p.Variation != "" {
		patch.DefaultPracticeVariation = &p.Variation
	}
	if p.ViewMode != "" {
		patch.ViewMode = &p.ViewMode
	}
	return patch, nil
}

func printPreferences(c *Container, prefs domain.Preferences) {
	st := c.Styles
	fmt.Println(st.Label.Render("Theme") + prefs.Theme)
	fmt.Println(st.Label.Render("View mode") + prefs.ViewMode)
	fmt.Println(st.Label.Render("Variation") + prefs.DefaultPracticeVariation)
	fmt.Println(st.Label.Render("Auto-save") + strconv.FormatBool(prefs.AutoSave))
	fmt.Println(st.Label.Render("Notifications") + strconv.FormatBool(prefs.Notifications))
}
