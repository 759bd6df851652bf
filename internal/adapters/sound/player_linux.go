//go:build linux

package sound

import "os/exec"

// playForEvent tries the freedesktop sound theme through paplay or canberra
func playForEvent(event string) error {
	soundID := "complete"
	if event == EventStandardComplete {
		soundID = "bell"
	}

	if path, err := exec.LookPath("canberra-gtk-play"); err == nil {
		if exec.Command(path, "--id", soundID).Start() == nil {
			return nil
		}
	}
	if path, err := exec.LookPath("paplay"); err == nil {
		if exec.Command(path, "/usr/share/sounds/freedesktop/stereo/"+soundID+".oga").Start() == nil {
			return nil
		}
	}

	return terminalBell()
}
