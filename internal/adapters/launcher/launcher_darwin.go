//go:build darwin

package launcher

func platformOpener(target string) (string, []string) {
	return "open", []string{target}
}
