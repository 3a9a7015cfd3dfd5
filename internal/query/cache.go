package query

import (
	"sync"
	"time"

	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
)

// Freshness classifies a cache entry by age.
type Freshness int

const (
	// Fresh entries are served without a network call.
	Fresh Freshness = iota
	// Stale entries are served while a refresh runs.
	Stale
)

type entry struct {
	page      *tmdb.SearchPage
	fetchedAt time.Time
}

// Cache maps keys to resolved pages. An entry is fresh for staleTime after
// it was stored, servable as stale until gcTime, and evicted after that.
type Cache struct {
	mu        sync.Mutex
	entries   map[Key]entry
	staleTime time.Duration
	gcTime    time.Duration
	now       func() time.Time
}

// NewCache creates a cache. A nil clock means time.Now.
func NewCache(staleTime, gcTime time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries:   make(map[Key]entry),
		staleTime: staleTime,
		gcTime:    gcTime,
		now:       now,
	}
}

// Lookup returns the cached page for key. Expired entries are evicted and
// reported as missing.
func (c *Cache) Lookup(key Key) (*tmdb.SearchPage, Freshness, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, Stale, false
	}

	age := c.now().Sub(e.fetchedAt)
	switch {
	case age >= c.gcTime:
		delete(c.entries, key)
		return nil, Stale, false
	case age < c.staleTime:
		return e.page, Fresh, true
	default:
		return e.page, Stale, true
	}
}

// Store records page for key, resetting its age.
func (c *Cache) Store(key Key, page *tmdb.SearchPage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{page: page, fetchedAt: c.now()}
}

// Sweep evicts every expired entry and returns how many were removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if now.Sub(e.fetchedAt) >= c.gcTime {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
