package query

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/sebastiantruijens/moviesearch/internal/logger"
	"github.com/sebastiantruijens/moviesearch/internal/tmdb"
)

// Fetcher retrieves one page of search results.
type Fetcher interface {
	SearchMovies(ctx context.Context, query string, page int) (*tmdb.SearchPage, error)
}

// Client puts a cache and per-key request deduplication in front of a Fetcher.
type Client struct {
	fetcher Fetcher
	cache   *Cache
	group   singleflight.Group
}

func NewClient(fetcher Fetcher, cache *Cache) *Client {
	return &Client{
		fetcher: fetcher,
		cache:   cache,
	}
}

func (c *Client) Cache() *Cache {
	return c.cache
}

// Fetch requests key from the network. Concurrent calls for the same key
// share one request. Successful pages are cached; failures never are.
func (c *Client) Fetch(ctx context.Context, key Key) (*tmdb.SearchPage, error) {
	v, err, shared := c.group.Do(key.String(), func() (any, error) {
		start := time.Now()
		page, err := c.fetcher.SearchMovies(ctx, key.Query, key.Page)
		if err != nil {
			logger.Warn("search fetch failed",
				"query", key.Query,
				"page", key.Page,
				"duration", time.Since(start),
				"error", err)
			return nil, err
		}
		c.cache.Store(key, page)
		logger.Info("search fetched",
			"query", key.Query,
			"page", key.Page,
			"results", len(page.Results),
			"duration", time.Since(start))
		return page, nil
	})
	if shared {
		logger.Debug("search fetch shared", "query", key.Query, "page", key.Page)
	}
	if err != nil {
		return nil, err
	}
	return v.(*tmdb.SearchPage), nil
}
