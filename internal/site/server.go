package site

import (
	"os/exec"
	"runtime"
)

// OpenBrowser opens the given URL in the default browser. Failures are
// ignored; the URL is always printed as well.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
