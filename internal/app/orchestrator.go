// Package app holds the application state machine. It owns the query text,
// the current page and the selected movie, and turns events into effects so
// that it can be driven without a terminal.
package app

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sebastiantruijens/moviesearch/internal/logger"
	"github.com/sebastiantruijens/moviesearch/internal/query"
	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
)

// Notification texts
const (
	MsgEmptyQuery     = "Please, enter your search query!"
	MsgNoResults      = "No movies found for your request"
	MsgSomethingWrong = "Something went wrong. Please try again!"
)

// Phase is the visible state of the result area.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// Orchestrator is the single owner of search state.
type Orchestrator struct {
	query         string
	page          int
	selected      *tmdb.Movie
	observer      *query.Observer
	toastDuration time.Duration
	newID         func() string
}

func New(observer *query.Observer, toastDuration time.Duration) *Orchestrator {
	return &Orchestrator{
		page:          1,
		observer:      observer,
		toastDuration: toastDuration,
		newID:         uuid.NewString,
	}
}

// Dispatch applies ev and returns the effects the host must run, in order.
func (o *Orchestrator) Dispatch(ev Event) []Effect {
	switch ev := ev.(type) {
	case Submit:
		text := strings.TrimSpace(ev.Text)
		if text == "" {
			return []Effect{o.notify(LevelError, MsgEmptyQuery)}
		}
		o.query = text
		o.page = 1
		logger.Debug("search submitted", "query", o.query)
		return append([]Effect{ScrollTop{}}, o.load()...)

	case PageChange:
		o.page = max(ev.Page, 1)
		logger.Debug("page changed", "query", o.query, "page", o.page)
		return append([]Effect{ScrollTop{}}, o.load()...)

	case Select:
		movie := ev.Movie
		o.selected = &movie
		return []Effect{LockScroll{}}

	case CloseOverlay:
		if o.selected != nil {
			logger.Debug("overlay closed", "movie_id", o.selected.ID, "via", ev.Via.String())
		}
		o.selected = nil
		return []Effect{UnlockScroll{}}

	case FetchDone:
		if !o.observer.Resolve(ev.Key, ev.Page, ev.Err) {
			logger.Debug("discarded superseded response", "query", ev.Key.Query, "page", ev.Key.Page)
			return nil
		}
		return o.outcome()
	}

	return nil
}

func (o *Orchestrator) load() []Effect {
	key := query.NewKey(o.query, o.page)

	var effects []Effect
	if o.observer.SetKey(key) {
		effects = append(effects, Fetch{Key: key})
	}

	// A fresh cache hit resolves immediately and never comes back as FetchDone
	if r := o.observer.Result(); r.Status == query.StatusSuccess && !r.IsFetching {
		effects = append(effects, o.outcome()...)
	}

	return effects
}

func (o *Orchestrator) outcome() []Effect {
	r := o.observer.Result()

	switch r.Status {
	case query.StatusSuccess:
		if len(r.Data.Results) == 0 && r.Key.Query != "" {
			return []Effect{o.notify(LevelInfo, MsgNoResults)}
		}
	case query.StatusError:
		logger.Warn("search failed", "query", r.Key.Query, "page", r.Key.Page, "error", r.Err)
		return []Effect{o.notify(LevelError, MsgSomethingWrong)}
	}

	return nil
}

func (o *Orchestrator) notify(level Level, text string) Notify {
	return Notify{Notification: Notification{
		ID:       o.newID(),
		Level:    level,
		Text:     text,
		Duration: o.toastDuration,
	}}
}

func (o *Orchestrator) Phase() Phase {
	switch o.observer.Result().Status {
	case query.StatusLoading:
		return PhaseLoading
	case query.StatusSuccess:
		return PhaseLoaded
	case query.StatusError:
		return PhaseError
	default:
		return PhaseIdle
	}
}

func (o *Orchestrator) Query() string {
	return o.query
}

func (o *Orchestrator) Page() int {
	return o.page
}

// Selected returns the movie shown in the overlay, or nil when it is closed.
func (o *Orchestrator) Selected() *tmdb.Movie {
	return o.selected
}

func (o *Orchestrator) OverlayOpen() bool {
	return o.selected != nil
}

func (o *Orchestrator) Result() query.Result {
	return o.observer.Result()
}

func (o *Orchestrator) Movies() []tmdb.Movie {
	return o.observer.Movies()
}

func (o *Orchestrator) TotalPages() int {
	return o.observer.TotalPages()
}

func (o *Orchestrator) TotalResults() int {
	return o.observer.TotalResults()
}
