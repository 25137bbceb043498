//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=feed

package feed

import (
	"context"

	"github.com/dom314/dom/pkg/model"
)

type subscriptionLister interface {
	ListSubscriptions(ctx context.Context, group model.Group) ([]model.Subscription, error)
}

type subscriptionSetter interface {
	SetSubscription(ctx context.Context, group model.Group, feedURL string, backend string, subscribed bool) error
}
