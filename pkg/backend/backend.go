//go:generate mockgen -source=backend.go -destination=backend_mock_test.go -package=backend

package backend

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dom314/dom/pkg/model"
)

// FetchingBackend turns a feed URL into its episodes.
type FetchingBackend interface {
	// FetchFeed returns episodes ordered by publication time ascending
	FetchFeed(ctx context.Context, feedURL string) ([]model.Episode, error)
}

// DiscoveryBackend offers a catalog of podcasts.
type DiscoveryBackend interface {
	Discovery(ctx context.Context) ([]model.Podcast, error)
}

// Searcher is implemented by discovery backends with their own search
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.Podcast, error)
}

// Search queries a discovery backend. Backends that don't implement Searcher
// are searched by a case sensitive substring match over title and description.
func Search(ctx context.Context, b DiscoveryBackend, query string) ([]model.Podcast, error) {
	if searcher, ok := b.(Searcher); ok {
		return searcher.Search(ctx, query)
	}

	podcasts, err := b.Discovery(ctx)
	if err != nil {
		return nil, err
	}

	var found []model.Podcast
	for _, podcast := range podcasts {
		if strings.Contains(podcast.Title, query) || strings.Contains(podcast.Description, query) {
			found = append(found, podcast)
		}
	}

	return found, nil
}

// SortEpisodes orders a feed ascending by publication time and shifts colliding
// timestamps forward by a nanosecond so that no two episodes compare equal.
// Episodes sharing a timestamp keep their encounter order.
func SortEpisodes(episodes []model.Episode) {
	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].PublishedAt.Before(episodes[j].PublishedAt)
	})

	for i := 1; i < len(episodes); i++ {
		prev := episodes[i-1].PublishedAt
		if !episodes[i].PublishedAt.After(prev) {
			episodes[i].PublishedAt = prev.Add(time.Nanosecond)
		}
	}
}
