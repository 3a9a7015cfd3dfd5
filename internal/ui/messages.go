package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sebastiantruijens/moviesearch/internal/app"
	"github.com/sebastiantruijens/moviesearch/internal/query"
	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
)

// eventMsg carries a component's request up to the orchestrator.
type eventMsg struct {
	event app.Event
}

func emit(ev app.Event) tea.Cmd {
	return func() tea.Msg {
		return eventMsg{event: ev}
	}
}

type fetchDoneMsg struct {
	key  query.Key
	page *tmdb.SearchPage
	err  error
}

type toastExpiredMsg struct {
	id string
}

type sweepMsg struct{}

type openBrowserMsg struct {
	err error
}

type copyLinkMsg struct {
	err error
}
