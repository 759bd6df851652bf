//go:build darwin

package sound

import "os/exec"

// playForEvent plays sounds on macOS using afplay
func playForEvent(event string) error {
	var soundFiles []string

	switch event {
	case EventStandardComplete:
		soundFiles = []string{
			"/System/Library/Sounds/Hero.aiff",
			"/System/Library/Sounds/Glass.aiff",
		}
	case EventSessionComplete:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
