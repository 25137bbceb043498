// Package aggregate merges the episodes of many feeds into one timeline.
package aggregate

import (
	"context"
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dom314/dom/pkg/backend"
	"github.com/dom314/dom/pkg/model"
)

// Policy decides what a group view does when some of its feeds fail
type Policy string

const (
	// PolicyFail returns no episodes if any feed fails
	PolicyFail = Policy("fail")
	// PolicyPartial returns the episodes of healthy feeds along with the errors
	PolicyPartial = Policy("partial")
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyFail, PolicyPartial:
		return Policy(s), nil
	default:
		return "", errors.Errorf("unsupported aggregation policy %q", s)
	}
}

type Option func(a *Aggregator)

// WithPolicy sets the failure policy, PolicyFail is the default
func WithPolicy(policy Policy) Option {
	return func(a *Aggregator) {
		a.policy = policy
	}
}

// WithConcurrency limits the number of feeds fetched at once, 0 means no limit
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		a.concurrency = n
	}
}

type Aggregator struct {
	subscriptions subscriptionLister
	feeds         feedCache
	policy        Policy
	concurrency   int
}

func New(subscriptions subscriptionLister, feeds feedCache, opts ...Option) *Aggregator {
	a := &Aggregator{
		subscriptions: subscriptions,
		feeds:         feeds,
		policy:        PolicyFail,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// EpisodesForGroup fetches every feed subscribed in the group in parallel and
// returns their episodes merged in the requested order.
//
// Feed failures are collected into a *multierror.Error. Under PolicyFail the
// episode list is nil whenever err is not nil. Under PolicyPartial the list holds
// the episodes of all feeds that succeeded and err describes the ones that didn't;
// the list is nil only when no feed succeeded.
// Storage failures always fail the whole call.
func (a *Aggregator) EpisodesForGroup(ctx context.Context, group model.Group, order model.Sorting) ([]model.Episode, error) {
	started := time.Now()

	subscriptions, err := a.subscriptions.ListSubscriptions(ctx, group)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list subscriptions of %q", group)
	}

	var (
		g       errgroup.Group
		results = make([][]model.Episode, len(subscriptions))
		errs    = make([]error, len(subscriptions))
	)

	if a.concurrency > 0 {
		g.SetLimit(a.concurrency)
	}

	for i, sub := range subscriptions {
		i, sub := i, sub
		g.Go(func() error {
			episodes, err := a.feeds.GetOrFetch(ctx, sub.Backend, sub.FeedURL)
			if err != nil {
				errs[i] = errors.Wrapf(err, "feed %s", sub.FeedURL)
				return nil
			}

			// Backends promise strict ordering, enforce it so that merging is stable
			backend.SortEpisodes(episodes)
			results[i] = episodes
			return nil
		})
	}

	_ = g.Wait()

	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}

	logger := log.WithFields(log.Fields{
		"group":   group,
		"feeds":   len(subscriptions),
		"elapsed": time.Since(started),
	})

	if result != nil {
		if a.policy != PolicyPartial {
			logger.WithError(result).Error("failed to fetch group")
			return nil, result
		}

		logger.WithError(result).Warnf("%d feed(s) failed, showing partial results", len(result.Errors))
	}

	// Nil only when every feed failed, a healthy feed with no episodes still counts
	if result != nil && len(result.Errors) == len(subscriptions) {
		return nil, result
	}

	merged := make([]model.Episode, 0)
	for _, episodes := range results {
		merged = append(merged, episodes...)
	}

	Sort(merged, order)

	logger.Debugf("aggregated %d episode(s)", len(merged))
	return merged, result.ErrorOrNil()
}

// EpisodesForPodcast returns the episodes of a single feed in the requested order.
func (a *Aggregator) EpisodesForPodcast(ctx context.Context, backendID string, feedURL string, order model.Sorting) ([]model.Episode, error) {
	episodes, err := a.feeds.GetOrFetch(ctx, backendID, feedURL)
	if err != nil {
		return nil, err
	}

	backend.SortEpisodes(episodes)
	Sort(episodes, order)
	return episodes, nil
}

// Sort orders episodes by publication time. Equal timestamps from different
// feeds are ordered by audio URL so that the result is deterministic.
func Sort(episodes []model.Episode, order model.Sorting) {
	sort.SliceStable(episodes, func(i, j int) bool {
		a, b := episodes[i], episodes[j]
		if order == model.SortingDesc {
			a, b = b, a
		}

		if !a.PublishedAt.Equal(b.PublishedAt) {
			return a.PublishedAt.Before(b.PublishedAt)
		}

		return a.AudioURL < b.AudioURL
	})
}

// Unlistened drops episodes that are marked as listened.
func Unlistened(ctx context.Context, checker listenedChecker, episodes []model.Episode) ([]model.Episode, error) {
	var out []model.Episode

	for _, episode := range episodes {
		listened, err := checker.IsListened(ctx, episode.AudioURL)
		if err != nil {
			return nil, err
		}

		if !listened {
			out = append(out, episode)
		}
	}

	return out, nil
}
