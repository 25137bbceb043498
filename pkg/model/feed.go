package model

import (
	"time"
)

// Podcast is a show offered by a discovery backend.
type Podcast struct {
	// Backend is the identifier of the backend that serves this podcast
	Backend     string
	FeedURL     string
	Title       string
	Description string
}

// Episode is a single playable item of a feed.
type Episode struct {
	// Podcast is the display name of the parent feed
	Podcast     string
	Title       string
	Description string
	PublishedAt time.Time
	// AudioURL identifies the episode for listened-state lookups
	AudioURL string
}

// Subscription is a feed membership record of a group.
type Subscription struct {
	FeedURL string
	Backend string
}
