//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=aggregate

package aggregate

import (
	"context"

	"github.com/dom314/dom/pkg/model"
)

type subscriptionLister interface {
	ListSubscriptions(ctx context.Context, group model.Group) ([]model.Subscription, error)
}

type feedCache interface {
	GetOrFetch(ctx context.Context, backendID string, feedURL string) ([]model.Episode, error)
}

type listenedChecker interface {
	IsListened(ctx context.Context, audioURL string) (bool, error)
}
