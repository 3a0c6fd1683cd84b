package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(icon, title, body string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", "-i", icon, title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
