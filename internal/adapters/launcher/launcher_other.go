//go:build !darwin && !linux && !windows

package launcher

func platformOpener(target string) (string, []string) {
	return "", nil
}
