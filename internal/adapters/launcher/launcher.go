package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/renato0307/shed/internal/logging"
	"github.com/renato0307/shed/internal/ports"
)

// Launcher implements ports.Launcher
type Launcher struct{}

// Verify interface compliance at compile time
var _ ports.Launcher = (*Launcher)(nil)

// New creates a new launcher
func New() *Launcher {
	return &Launcher{}
}

// Open opens a lead sheet URL or a recording file.
// Priority: $SHED_OPENER → $BROWSER → platform default
func (l *Launcher) Open(target string) error {
	if target == "" {
		return errors.New("nothing to open")
	}

	name, args := findOpener(target)
	if name == "" {
		return fmt.Errorf("no opener found. Set $SHED_OPENER or $BROWSER")
	}

	logging.Logger.Info("Opening", "opener", name, "target", target)

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Opener exited with error", "error", err, "opener", name)
		}
	}()

	return nil
}

func findOpener(target string) (string, []string) {
	if opener := os.Getenv("SHED_OPENER"); opener != "" {
		return opener, []string{target}
	}
	if browser := os.Getenv("BROWSER"); browser != "" {
		return browser, []string{target}
	}
	return platformOpener(target)
}
