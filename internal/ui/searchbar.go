package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sebastiantruijens/moviesearch/internal/app"
)

// SearchBar captures free text. Enter emits the raw value; trimming and
// validation are the orchestrator's job.
type SearchBar struct {
	input textinput.Model
}

func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.Prompt = "🔍 "
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 44

	// Option+Backspace on macOS terminals
	ti.KeyMap.DeleteWordBackward = key.NewBinding(
		key.WithKeys("alt+backspace", "ctrl+w"),
	)
	ti.KeyMap.DeleteWordBackward.SetEnabled(true)

	return SearchBar{input: ti}
}

func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		return s, emit(app.Submit{Text: s.input.Value()})
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

func (s *SearchBar) Blur() {
	s.input.Blur()
}

func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

func (s SearchBar) Value() string {
	return s.input.Value()
}

func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
}

func (s SearchBar) View() string {
	return inputStyle.Render(s.input.View())
}
