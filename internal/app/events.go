package app

import (
	"time"

	"github.com/sebastiantruijens/moviesearch/internal/query"
	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
)

// Event is an input dispatched to the Orchestrator.
type Event interface {
	isEvent()
}

// Submit carries the raw text of the search input.
type Submit struct {
	Text string
}

// PageChange requests a 1-based page of the current query.
type PageChange struct {
	Page int
}

// Select opens the detail overlay for a movie.
type Select struct {
	Movie tmdb.Movie
}

// DismissVia names how the overlay was dismissed.
type DismissVia int

const (
	ViaBackdrop DismissVia = iota
	ViaCloseControl
	ViaEscape
)

func (v DismissVia) String() string {
	switch v {
	case ViaBackdrop:
		return "backdrop"
	case ViaCloseControl:
		return "close_control"
	default:
		return "escape"
	}
}

// CloseOverlay dismisses the detail overlay.
type CloseOverlay struct {
	Via DismissVia
}

// FetchDone reports the outcome of a Fetch effect.
type FetchDone struct {
	Key  query.Key
	Page *tmdb.SearchPage
	Err  error
}

func (Submit) isEvent()       {}
func (PageChange) isEvent()   {}
func (Select) isEvent()       {}
func (CloseOverlay) isEvent() {}
func (FetchDone) isEvent()    {}

// Effect is work the Orchestrator asks its host to perform.
type Effect interface {
	isEffect()
}

// Fetch asks for key to be requested from the network.
type Fetch struct {
	Key query.Key
}

// Notify asks for a transient notification to be shown.
type Notify struct {
	Notification Notification
}

// ScrollTop asks for the result area to scroll back to the first item.
type ScrollTop struct{}

// LockScroll suspends background scrolling while the overlay is open.
type LockScroll struct{}

// UnlockScroll lifts the scroll suspension.
type UnlockScroll struct{}

func (Fetch) isEffect()        {}
func (Notify) isEffect()       {}
func (ScrollTop) isEffect()    {}
func (LockScroll) isEffect()   {}
func (UnlockScroll) isEffect() {}

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notification is a transient message dismissed after Duration.
type Notification struct {
	ID       string
	Level    Level
	Text     string
	Duration time.Duration
}
