// Package state keeps per-user podcast state: listened episodes and
// subscription group membership.
package state

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dom314/dom/pkg/db"
	"github.com/dom314/dom/pkg/model"
)

// ListenedTree is the collection of listened audio URLs
const ListenedTree = "listened"

// listenedMarker is stored as the value of listened records, only presence matters
const listenedMarker = ""

type Store struct {
	storage db.Storage
}

func New(storage db.Storage) *Store {
	return &Store{storage: storage}
}

// IsListened reports whether the episode with the given audio URL was played.
func (s *Store) IsListened(ctx context.Context, audioURL string) (bool, error) {
	ok, err := s.storage.Tree(ListenedTree).Contains(ctx, audioURL)
	if err != nil {
		return false, &model.StorageError{Op: "is listened", Err: err}
	}

	return ok, nil
}

// SetListened marks or unmarks an episode as listened. Repeated calls with
// the same value leave the state unchanged.
func (s *Store) SetListened(ctx context.Context, audioURL string, listened bool) error {
	var (
		tree = s.storage.Tree(ListenedTree)
		err  error
	)

	// Both are single key writes, deleting a missing marker is a no-op
	if listened {
		err = tree.Put(ctx, audioURL, listenedMarker)
	} else {
		err = tree.Delete(ctx, audioURL)
	}
	if err != nil {
		return &model.StorageError{Op: "set listened", Err: err}
	}

	log.WithFields(log.Fields{
		"audio_url": audioURL,
		"listened":  listened,
	}).Debug("listened state changed")
	return nil
}

func (s *Store) IsSubscribed(ctx context.Context, group model.Group, feedURL string) (bool, error) {
	ok, err := s.storage.Tree(string(group)).Contains(ctx, feedURL)
	if err != nil {
		return false, &model.StorageError{Op: "is subscribed", Err: err}
	}

	return ok, nil
}

// Subscription returns the subscription record of a feed in the group.
// model.ErrNotFound is returned when the feed is not subscribed.
func (s *Store) Subscription(ctx context.Context, group model.Group, feedURL string) (model.Subscription, error) {
	backend, err := s.storage.Tree(string(group)).Get(ctx, feedURL)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Subscription{}, errors.Wrapf(model.ErrNotFound, "%s is not subscribed in %s", feedURL, group)
		}
		return model.Subscription{}, &model.StorageError{Op: "get subscription", Err: err}
	}

	return model.Subscription{FeedURL: feedURL, Backend: backend}, nil
}

// SetSubscription adds the feed to the group (recording its backend) or removes it.
// Subscribing twice keeps the last backend.
func (s *Store) SetSubscription(ctx context.Context, group model.Group, feedURL string, backend string, subscribed bool) error {
	err := s.storage.Tree(string(group)).Update(ctx, feedURL, func(_ *string) *string {
		if !subscribed {
			return nil
		}
		return &backend
	})
	if err != nil {
		return &model.StorageError{Op: "set subscription", Err: err}
	}

	log.WithFields(log.Fields{
		"group":      group,
		"feed_url":   feedURL,
		"backend":    backend,
		"subscribed": subscribed,
	}).Debug("subscription changed")
	return nil
}

// ListSubscriptions returns all feeds of a group. The order is unspecified.
func (s *Store) ListSubscriptions(ctx context.Context, group model.Group) ([]model.Subscription, error) {
	var list []model.Subscription

	err := s.storage.Tree(string(group)).Walk(ctx, func(feedURL, backend string) error {
		list = append(list, model.Subscription{FeedURL: feedURL, Backend: backend})
		return nil
	})
	if err != nil {
		return nil, &model.StorageError{Op: "list subscriptions", Err: err}
	}

	return list, nil
}
