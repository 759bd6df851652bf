package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/renato0307/shed/internal/config"
	"github.com/renato0307/shed/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Auth       AuthCmd       `cmd:"auth" help:"Manage the identity held on this device"`
	Library    LibraryCmd    `cmd:"library" help:"Browse the recordings and notes library"`
	Prefs      PrefsCmd      `cmd:"prefs" help:"Show or change preferences"`
	Progress   ProgressCmd   `cmd:"progress" help:"Track practice progress per standard"`
	Recordings RecordingsCmd `cmd:"recordings" help:"Manage recordings attached to a standard's progress"`
	Remote     RemoteCmd     `cmd:"remote" help:"Inspect and refresh the remote copy of your data"`
	Schedule   ScheduleCmd   `cmd:"schedule" help:"Plan practice sessions"`
	Settings   SettingsCmd   `cmd:"settings" help:"Manage settings (meta)"`
	Standards  StandardsCmd  `cmd:"standards" help:"Browse the standards catalog"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing, applies settings and
// binds the dependency container for command Run methods
func (c *CLI) AfterApply(kctx *kong.Context) error {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}

	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("SHED_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv("SHED_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
			c.Debug = true
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("SHED_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SHED_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("SHED_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	// Container is created after logging so the gorm logger writes to the real handler
	container, err := NewContainer(context.Background(), c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	kctx.Bind(container)

	if banner := container.Banner(); banner != "" {
		fmt.Fprintln(os.Stderr, banner)
	}

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
