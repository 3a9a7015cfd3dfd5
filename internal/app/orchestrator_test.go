package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sebastiantruijens/moviesearch/internal/query"
	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
)

func newOrchestrator() (*Orchestrator, *query.Cache) {
	cache := query.NewCache(5*time.Minute, 10*time.Minute, nil)
	o := New(query.NewObserver(cache, 2), 3*time.Second)
	n := 0
	o.newID = func() string {
		n++
		return fmt.Sprintf("toast-%d", n)
	}
	return o, cache
}

func moviesPage(page, totalPages, count int) *tmdb.SearchPage {
	movies := make([]tmdb.Movie, count)
	for i := range movies {
		movies[i] = tmdb.Movie{ID: page*100 + i, Title: fmt.Sprintf("Movie %d-%d", page, i)}
	}
	return &tmdb.SearchPage{Page: page, Results: movies, TotalPages: totalPages, TotalResults: totalPages * 20}
}

func fetches(effects []Effect) []query.Key {
	var keys []query.Key
	for _, e := range effects {
		if f, ok := e.(Fetch); ok {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func notifications(effects []Effect) []Notification {
	var out []Notification
	for _, e := range effects {
		if n, ok := e.(Notify); ok {
			out = append(out, n.Notification)
		}
	}
	return out
}

func TestSubmit_BlankNeverFetches(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n", "     "} {
		o, _ := newOrchestrator()
		effects := o.Dispatch(Submit{Text: text})

		if len(fetches(effects)) != 0 {
			t.Fatalf("%q: expected no fetch", text)
		}
		n := notifications(effects)
		if len(n) != 1 || n[0].Text != MsgEmptyQuery {
			t.Fatalf("%q: expected empty query notification, got %+v", text, n)
		}
		if o.Phase() != PhaseIdle || o.Query() != "" {
			t.Fatalf("%q: expected state untouched", text)
		}
	}
}

func TestSubmit_BlankKeepsExistingSearch(t *testing.T) {
	o, _ := newOrchestrator()
	o.Dispatch(Submit{Text: "batman"})
	o.Dispatch(PageChange{Page: 2})

	o.Dispatch(Submit{Text: "  "})

	if o.Query() != "batman" || o.Page() != 2 {
		t.Fatalf("expected batman/2 to remain, got %s/%d", o.Query(), o.Page())
	}
}

func TestSubmit_TrimsAndFetchesPageOne(t *testing.T) {
	o, _ := newOrchestrator()
	effects := o.Dispatch(Submit{Text: "  batman  "})

	keys := fetches(effects)
	if len(keys) != 1 || keys[0] != (query.Key{Query: "batman", Page: 1}) {
		t.Fatalf("expected fetch of batman/1, got %+v", keys)
	}
	if o.Phase() != PhaseLoading {
		t.Fatalf("expected loading, got %v", o.Phase())
	}
}

func TestSubmit_ShortQueryIsIdle(t *testing.T) {
	o, _ := newOrchestrator()
	effects := o.Dispatch(Submit{Text: "a"})

	if len(fetches(effects)) != 0 || len(notifications(effects)) != 0 {
		t.Fatalf("expected no fetch and no notification, got %+v", effects)
	}
	if o.Query() != "a" || o.Phase() != PhaseIdle {
		t.Fatalf("expected idle with query a, got %v", o.Phase())
	}
}

func TestSubmit_ResetsPage(t *testing.T) {
	for _, prior := range []int{1, 2, 7, 500} {
		o, _ := newOrchestrator()
		o.Dispatch(Submit{Text: "batman"})
		o.Dispatch(PageChange{Page: prior})

		effects := o.Dispatch(Submit{Text: "superman"})

		if o.Page() != 1 {
			t.Fatalf("prior page %d: expected page 1, got %d", prior, o.Page())
		}
		keys := fetches(effects)
		if len(keys) != 1 || keys[0].Page != 1 {
			t.Fatalf("prior page %d: expected fetch of page 1, got %+v", prior, keys)
		}
	}
}

func TestSubmit_ScrollsTop(t *testing.T) {
	o, _ := newOrchestrator()

	effects := o.Dispatch(Submit{Text: "batman"})
	if _, ok := effects[0].(ScrollTop); !ok {
		t.Fatalf("expected ScrollTop first, got %+v", effects)
	}

	if effects := o.Dispatch(Submit{Text: "  "}); len(effects) != 1 || len(notifications(effects)) != 1 {
		t.Fatalf("expected only a notification for blank input, got %+v", effects)
	}
}

func TestPageChange_ClampsToFirstPage(t *testing.T) {
	for _, page := range []int{0, -3} {
		o, _ := newOrchestrator()
		o.Dispatch(Submit{Text: "batman"})
		o.Dispatch(PageChange{Page: 2})

		effects := o.Dispatch(PageChange{Page: page})

		if o.Page() != 1 {
			t.Fatalf("page %d: expected page 1, got %d", page, o.Page())
		}
		keys := fetches(effects)
		if len(keys) != 1 || keys[0].Page != o.Page() {
			t.Fatalf("page %d: expected fetch of page 1, got %+v", page, keys)
		}
	}
}

func TestPageChange_KeepsQueryAndScrollsTop(t *testing.T) {
	o, _ := newOrchestrator()
	o.Dispatch(Submit{Text: "batman"})

	effects := o.Dispatch(PageChange{Page: 2})

	if o.Query() != "batman" || o.Page() != 2 {
		t.Fatalf("expected batman/2, got %s/%d", o.Query(), o.Page())
	}
	if _, ok := effects[0].(ScrollTop); !ok {
		t.Fatalf("expected ScrollTop first, got %+v", effects)
	}
	keys := fetches(effects)
	if len(keys) != 1 || keys[0] != (query.Key{Query: "batman", Page: 2}) {
		t.Fatalf("expected fetch of batman/2, got %+v", keys)
	}
}

func TestCachedKey_NoNetworkAndSynchronous(t *testing.T) {
	o, cache := newOrchestrator()
	key := query.NewKey("batman", 1)
	cache.Store(key, moviesPage(1, 2, 17))

	effects := o.Dispatch(Submit{Text: "batman"})

	if len(fetches(effects)) != 0 {
		t.Fatal("expected no fetch for a fresh cached page")
	}
	if o.Phase() != PhaseLoaded || len(o.Movies()) != 17 {
		t.Fatalf("expected cached page to be shown, got %v with %d movies", o.Phase(), len(o.Movies()))
	}
}

func TestFetchDone_BatmanScenario(t *testing.T) {
	o, _ := newOrchestrator()
	effects := o.Dispatch(Submit{Text: "batman"})
	key := fetches(effects)[0]

	effects = o.Dispatch(FetchDone{Key: key, Page: moviesPage(1, 2, 17)})

	if len(notifications(effects)) != 0 {
		t.Fatalf("expected no notification, got %+v", effects)
	}
	if o.Phase() != PhaseLoaded || len(o.Movies()) != 17 || o.TotalPages() != 2 {
		t.Fatalf("unexpected state: phase=%v movies=%d pages=%d", o.Phase(), len(o.Movies()), o.TotalPages())
	}
}

func TestFetchDone_EmptyResultNotifiesOnce(t *testing.T) {
	o, _ := newOrchestrator()
	effects := o.Dispatch(Submit{Text: "zzzxxxnonexistent"})
	key := fetches(effects)[0]
	empty := &tmdb.SearchPage{Page: 1, Results: []tmdb.Movie{}, TotalPages: 0}

	effects = o.Dispatch(FetchDone{Key: key, Page: empty})
	n := notifications(effects)
	if len(n) != 1 || n[0].Text != MsgNoResults || n[0].Level != LevelInfo {
		t.Fatalf("expected one no-results notification, got %+v", n)
	}
	if o.Phase() != PhaseLoaded {
		t.Fatalf("expected loaded, got %v", o.Phase())
	}
	if o.TotalPages() != 0 {
		t.Fatalf("expected no pages, got %d", o.TotalPages())
	}

	// a duplicate delivery of the same resolution must not notify again
	if effects := o.Dispatch(FetchDone{Key: key, Page: empty}); len(effects) != 0 {
		t.Fatalf("expected duplicate to be dropped, got %+v", effects)
	}
}

func TestFetchDone_FailureIsError(t *testing.T) {
	o, _ := newOrchestrator()
	first := fetches(o.Dispatch(Submit{Text: "batman"}))[0]
	o.Dispatch(FetchDone{Key: first, Page: moviesPage(1, 2, 17)})
	second := fetches(o.Dispatch(PageChange{Page: 2}))[0]

	effects := o.Dispatch(FetchDone{Key: second, Err: &tmdb.NetworkError{Op: "test", StatusCode: 500, Err: errors.New("down")}})

	n := notifications(effects)
	if len(n) != 1 || n[0].Text != MsgSomethingWrong || n[0].Level != LevelError {
		t.Fatalf("expected one failure notification, got %+v", n)
	}
	if o.Phase() != PhaseError {
		t.Fatalf("expected error, got %v", o.Phase())
	}
	if len(o.Movies()) != 0 {
		t.Fatal("previous results must not reappear after a failure")
	}
}

func TestFetchDone_RapidPageChanges(t *testing.T) {
	o, _ := newOrchestrator()
	first := fetches(o.Dispatch(Submit{Text: "batman"}))[0]
	o.Dispatch(FetchDone{Key: first, Page: moviesPage(1, 5, 20)})

	page2 := fetches(o.Dispatch(PageChange{Page: 2}))[0]
	page3 := fetches(o.Dispatch(PageChange{Page: 3}))[0]

	if o.Phase() != PhaseLoading || !o.Result().IsPlaceholder {
		t.Fatal("expected page 1 to remain visible as placeholder")
	}

	o.Dispatch(FetchDone{Key: page3, Page: moviesPage(3, 5, 20)})
	if effects := o.Dispatch(FetchDone{Key: page2, Page: moviesPage(2, 5, 20)}); effects != nil {
		t.Fatalf("expected late page 2 to be discarded, got %+v", effects)
	}

	if o.Page() != 3 || o.Movies()[0].ID != 300 {
		t.Fatalf("expected page 3 results, got page %d first id %d", o.Page(), o.Movies()[0].ID)
	}
}

func TestOverlay_EveryDismissalPathClears(t *testing.T) {
	for _, via := range []DismissVia{ViaBackdrop, ViaCloseControl, ViaEscape} {
		o, _ := newOrchestrator()
		movie := tmdb.Movie{ID: 155, Title: "The Dark Knight"}

		effects := o.Dispatch(Select{Movie: movie})
		if _, ok := effects[0].(LockScroll); !ok || !o.OverlayOpen() {
			t.Fatalf("%v: expected overlay open with scroll locked", via)
		}
		if o.Selected().ID != 155 {
			t.Fatalf("%v: expected selected movie 155", via)
		}

		effects = o.Dispatch(CloseOverlay{Via: via})
		if _, ok := effects[0].(UnlockScroll); !ok {
			t.Fatalf("%v: expected scroll unlock, got %+v", via, effects)
		}
		if o.Selected() != nil || o.OverlayOpen() {
			t.Fatalf("%v: expected selection cleared", via)
		}
	}
}

func TestSelection_SurvivesPagination(t *testing.T) {
	o, _ := newOrchestrator()
	first := fetches(o.Dispatch(Submit{Text: "batman"}))[0]
	o.Dispatch(FetchDone{Key: first, Page: moviesPage(1, 2, 20)})
	o.Dispatch(Select{Movie: o.Movies()[4]})

	o.Dispatch(PageChange{Page: 2})

	if o.Selected() == nil || o.Selected().ID != 104 {
		t.Fatal("expected selection to be independent of page changes")
	}
}

func TestNotification_CarriesDuration(t *testing.T) {
	o, _ := newOrchestrator()
	n := notifications(o.Dispatch(Submit{}))
	if n[0].Duration != 3*time.Second || n[0].ID == "" {
		t.Fatalf("unexpected notification %+v", n[0])
	}
}
