package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sebastiantruijens/moviesearch/internal/app"
)

const maxToasts = 3

// Toaster shows transient notifications at the top of the screen, newest
// last. Each one expires on its own timer.
type Toaster struct {
	items []app.Notification
}

// Push shows n and returns the command that expires it.
func (t *Toaster) Push(n app.Notification) tea.Cmd {
	t.items = append(t.items, n)
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}

	id := n.ID
	return tea.Tick(n.Duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Dismiss removes the notification with id. Unknown ids are ignored.
func (t *Toaster) Dismiss(id string) {
	for i, n := range t.items {
		if n.ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

func (t Toaster) Items() []app.Notification {
	return t.items
}

// View renders the toast area. It is always maxToasts lines high so that
// nothing below it moves when a toast appears.
func (t Toaster) View(width int) string {
	lines := make([]string, maxToasts)
	for i, n := range t.items {
		style := infoToastStyle
		if n.Level == app.LevelError {
			style = errorToastStyle
		}
		text := style.Render(truncate(n.Text, width-2))
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
