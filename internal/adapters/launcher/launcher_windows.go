//go:build windows

package launcher

func platformOpener(target string) (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler", target}
}
