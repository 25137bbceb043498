//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=cache

package cache

import (
	"context"

	"github.com/dom314/dom/pkg/backend"
	"github.com/dom314/dom/pkg/model"
)

type backendResolver interface {
	Fetcher(id string) (backend.FetchingBackend, error)
}

type feedFetcher interface {
	FetchFeed(ctx context.Context, feedURL string) ([]model.Episode, error)
}
