package query

import (
	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
)

// Status is the fetch status of the observed key.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Result is what a view renders for its current key.
//
// While a key without cached data loads, Data holds the last successful page
// of the previous key and IsPlaceholder is set, so the view keeps showing it
// instead of going blank.
type Result struct {
	Key           Key
	Data          *tmdb.SearchPage
	Status        Status
	IsPlaceholder bool
	IsFetching    bool
	IsStale       bool
	Err           error
}

// Observer tracks a single current key against a Cache. It is not safe for
// concurrent use; the owner feeds it fetch outcomes one at a time.
type Observer struct {
	cache       *Cache
	minLength   int
	result      Result
	lastSuccess *tmdb.SearchPage
}

func NewObserver(cache *Cache, minLength int) *Observer {
	return &Observer{
		cache:     cache,
		minLength: minLength,
	}
}

// SetKey makes key current and reports whether a fetch must be issued for it.
func (o *Observer) SetKey(key Key) bool {
	if key == o.result.Key && o.result.IsFetching {
		return false
	}

	o.result = Result{Key: key}

	if !key.Enabled(o.minLength) {
		o.lastSuccess = nil
		return false
	}

	if page, freshness, ok := o.cache.Lookup(key); ok {
		o.result.Data = page
		o.result.Status = StatusSuccess
		o.lastSuccess = page
		if freshness == Stale {
			o.result.IsStale = true
			o.result.IsFetching = true
			return true
		}
		return false
	}

	o.result.Status = StatusLoading
	o.result.IsFetching = true
	if o.lastSuccess != nil {
		o.result.Data = o.lastSuccess
		o.result.IsPlaceholder = true
	}
	return true
}

// Resolve applies a fetch outcome. Outcomes for a key that is no longer
// current, or that was already resolved, are dropped and false is returned.
func (o *Observer) Resolve(key Key, page *tmdb.SearchPage, err error) bool {
	if key != o.result.Key || !o.result.IsFetching {
		return false
	}

	if err != nil {
		o.result = Result{Key: key, Status: StatusError, Err: err}
		o.lastSuccess = nil
		return true
	}

	o.result = Result{Key: key, Data: page, Status: StatusSuccess}
	o.lastSuccess = page
	return true
}

func (o *Observer) Result() Result {
	return o.result
}

// Movies returns the displayed movies, possibly placeholder or stale.
func (o *Observer) Movies() []tmdb.Movie {
	if o.result.Data == nil {
		return nil
	}
	return o.result.Data.Results
}

func (o *Observer) TotalPages() int {
	return o.result.Data.PageCount()
}

func (o *Observer) TotalResults() int {
	if o.result.Data == nil {
		return 0
	}
	return o.result.Data.TotalResults
}

func (o *Observer) Loading() bool {
	return o.result.Status == StatusLoading
}

func (o *Observer) Success() bool {
	return o.result.Status == StatusSuccess
}

func (o *Observer) Err() error {
	return o.result.Err
}
