package ui

import (
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// openBrowser opens a URL in the default browser
func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", etc.
		cmd = "xdg-open"
	}
	args = append(args, url)

	return exec.Command(cmd, args...).Start()
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return openBrowserMsg{err: openBrowser(url)}
	}
}

func copyLinkCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return copyLinkMsg{err: clipboard.WriteAll(url)}
	}
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, max(width, 1), "…")
}
