// Package cache memoizes feed fetches for the lifetime of the process.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/dom314/dom/pkg/model"
)

// Cache keeps the episode list of every feed fetched so far, keyed by feed URL.
// Entries never expire, they are dropped only by Wipe.
type Cache struct {
	backends backendResolver
	timeout  time.Duration

	lock    sync.RWMutex
	entries map[string][]model.Episode

	// flights allows one fetch per feed URL at a time
	flights singleflight.Group
}

// New creates an empty cache. A zero timeout means fetches are not time limited.
func New(backends backendResolver, timeout time.Duration) *Cache {
	return &Cache{
		backends: backends,
		timeout:  timeout,
		entries:  map[string][]model.Episode{},
	}
}

// GetOrFetch returns the cached episodes of a feed or fetches them through the backend.
// Concurrent callers for the same feed wait for a single fetch. Failed fetches are not
// cached. A caller whose context ends stops waiting while the fetch carries on for others.
func (c *Cache) GetOrFetch(ctx context.Context, backendID string, feedURL string) ([]model.Episode, error) {
	if episodes, ok := c.get(feedURL); ok {
		log.WithField("feed_url", feedURL).Debug("feed cache hit")
		return episodes, nil
	}

	ch := c.flights.DoChan(feedURL, func() (interface{}, error) {
		return c.fetch(ctx, backendID, feedURL)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		return clone(res.Val.([]model.Episode)), nil
	}
}

// Wipe drops all entries. Fetches in flight still store their results.
func (c *Cache) Wipe() {
	c.lock.Lock()
	defer c.lock.Unlock()

	log.Debugf("wiping %d cached feed(s)", len(c.entries))
	c.entries = map[string][]model.Episode{}
}

// Len returns the number of cached feeds
func (c *Cache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return len(c.entries)
}

func (c *Cache) get(feedURL string) ([]model.Episode, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	episodes, ok := c.entries[feedURL]
	if !ok {
		return nil, false
	}

	return clone(episodes), true
}

func (c *Cache) fetch(ctx context.Context, backendID string, feedURL string) (episodes []model.Episode, err error) {
	// Another flight may have completed between the lookup and this one starting
	if cached, ok := c.get(feedURL); ok {
		return cached, nil
	}

	b, err := c.backends.Fetcher(backendID)
	if err != nil {
		return nil, err
	}

	logger := log.WithFields(log.Fields{
		"backend":  backendID,
		"feed_url": feedURL,
	})
	logger.Debug("feed cache miss, fetching")

	// The fetch is shared, it must not be cancelled by the first caller going away
	fetchCtx := context.WithoutCancel(ctx)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(fetchCtx, c.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			episodes = nil
			err = &model.FetchError{Backend: backendID, URL: feedURL, Err: fmt.Errorf("backend panic: %v", r)}
		}
	}()

	started := time.Now()
	result, err := b.FetchFeed(fetchCtx, feedURL)
	if err != nil {
		if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) {
			err = errors.Wrapf(context.DeadlineExceeded, "timed out after %s", c.timeout)
		}

		logger.WithError(err).Warn("failed to fetch feed")
		return nil, &model.FetchError{Backend: backendID, URL: feedURL, Err: err}
	}

	stored := clone(result)

	c.lock.Lock()
	c.entries[feedURL] = stored
	c.lock.Unlock()

	logger.Debugf("cached %d episode(s) in %s", len(stored), time.Since(started))
	return stored, nil
}

func clone(episodes []model.Episode) []model.Episode {
	if episodes == nil {
		return nil
	}

	out := make([]model.Episode, len(episodes))
	copy(out, episodes)
	return out
}
