package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/shed/internal/domain"
	"github.com/renato0307/shed/internal/logging"
)

// AuthCmd manages the identity held on this device
type AuthCmd struct {
	Anonymous AuthAnonymousCmd `cmd:"anonymous" help:"Continue without an account; your local data is copied to the remote store"`
	SignIn    AuthSignInCmd    `cmd:"signin" help:"Sign in to an existing account"`
	SignOut   AuthSignOutCmd   `cmd:"signout" help:"Sign out"`
	SignUp    AuthSignUpCmd    `cmd:"signup" help:"Create an account and sign in"`
	Status    AuthStatusCmd    `cmd:"status" help:"Show who is signed in" default:"1"`
}

// AuthStatusCmd shows the current identity
type AuthStatusCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the status command
func (a *AuthStatusCmd) Run(c *Container) error {
	current := c.Identity.Current()
	if a.Format == "json" {
		return printJSON(current)
	}
	if current == nil {
		fmt.Println(c.Styles.Muted.Render("Signed out"))
		return nil
	}
	printIdentity(c, current)
	return nil
}

// AuthAnonymousCmd establishes an anonymous identity
type AuthAnonymousCmd struct{}

// Run executes the anonymous command
func (a *AuthAnonymousCmd) Run(c *Container) error {
	id, err := c.Identity.SignInAnonymously(context.Background())
	if err != nil {
		return fmt.Errorf("failed to sign in anonymously: %w", err)
	}
	printIdentity(c, id)
	printMigration(c)
	return nil
}

// AuthSignUpCmd registers an account
type AuthSignUpCmd struct {
	Name     string `help:"Display name (defaults to the email)"`
	Password string `help:"Password (at least 6 characters); prompted for when omitted on a terminal" env:"SHED_PASSWORD"`

	Email string `arg:"" help:"Account email"`
}

// Run executes the signup command
func (a *AuthSignUpCmd) Run(c *Container) error {
	logging.Logger.Info("Executing auth signup command", "email", a.Email)
	password, err := readPassword(a.Password, a.Email, true)
	if err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}
	id, err := c.Identity.SignUp(context.Background(), a.Email, password, a.Name)
	if err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}
	printIdentity(c, id)
	return nil
}

// AuthSignInCmd signs in
type AuthSignInCmd struct {
	Password string `help:"Password; prompted for when omitted on a terminal" env:"SHED_PASSWORD"`

	Email string `arg:"" help:"Account email"`
}

// Run executes the signin command
func (a *AuthSignInCmd) Run(c *Container) error {
	logging.Logger.Info("Executing auth signin command", "email", a.Email)
	password, err := readPassword(a.Password, a.Email, false)
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}
	id, err := c.Identity.SignIn(context.Background(), a.Email, password)
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}
	printIdentity(c, id)
	return nil
}

// AuthSignOutCmd signs out
type AuthSignOutCmd struct{}

// Run executes the signout command
func (a *AuthSignOutCmd) Run(c *Container) error {
	if err := c.Identity.SignOut(context.Background()); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	fmt.Println("Signed out. Local data stays on this device.")
	return nil
}

func printIdentity(c *Container, id *domain.Identity) {
	st := c.Styles
	kind := "account"
	if id.IsAnonymous {
		kind = "anonymous"
	}
	fmt.Println(st.Label.Render("User") + id.UserID + " " + st.Muted.Render("("+kind+")"))
	fmt.Println(st.Label.Render("Name") + id.DisplayName)
	if id.Email != "" {
		fmt.Println(st.Label.Render("Email") + id.Email)
	}
}

func printMigration(c *Container) {
	report := c.LastMigration()
	if report == nil {
		return
	}
	style := c.Styles.Done
	if !report.Complete() {
		style = c.Styles.Error
	}
	fmt.Println(c.Styles.Label.Render("Migration") + style.Render(report.String()))
	for _, failure := range report.Failures {
		fmt.Println("  " + c.Styles.Muted.Render(failure.Item+": "+failure.Err.Error()))
	}
}
