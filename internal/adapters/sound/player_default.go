//go:build !darwin && !linux

package sound

// playForEvent falls back to terminal bell on other platforms
func playForEvent(event string) error {
	return terminalBell()
}
