//go:build linux

package launcher

import "os/exec"

var defaultOpeners = []string{
	"xdg-open",
	"gio",
	"sensible-browser",
}

func platformOpener(target string) (string, []string) {
	for _, opener := range defaultOpeners {
		if _, err := exec.LookPath(opener); err == nil {
			if opener == "gio" {
				return opener, []string{"open", target}
			}
			return opener, []string{target}
		}
	}
	return "", nil
}
