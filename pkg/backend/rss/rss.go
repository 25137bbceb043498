// Package rss fetches RSS and Atom podcast feeds.
package rss

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dom314/dom/pkg/backend"
	"github.com/dom314/dom/pkg/model"
)

// ID is the identifier the backend registers under
const ID = "rss"

const userAgent = "dom314/1.0"

type Backend struct {
	client *http.Client
	now    func() time.Time
}

var _ backend.FetchingBackend = (*Backend)(nil)

func New(client *http.Client) *Backend {
	if client == nil {
		client = http.DefaultClient
	}

	return &Backend{client: client, now: time.Now}
}

func (b *Backend) FetchFeed(ctx context.Context, feedURL string) ([]model.Episode, error) {
	started := time.Now()

	fp := gofeed.NewParser()
	fp.Client = b.client
	fp.UserAgent = userAgent

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse feed")
	}

	episodes := b.convert(feed)

	log.WithFields(log.Fields{
		"feed_url": feedURL,
		"episodes": len(episodes),
		"elapsed":  time.Since(started),
	}).Debug("fetched rss feed")

	return episodes, nil
}

func (b *Backend) convert(feed *gofeed.Feed) []model.Episode {
	var (
		podcast  = feed.Title
		episodes []model.Episode
	)

	for _, item := range feed.Items {
		published := b.now().Local()
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.Local()
		}

		title := item.Title
		if title == "" {
			title = podcast
		}

		description := plainText(item.Description)

		for i, audioURL := range mediaURLs(item) {
			episodes = append(episodes, model.Episode{
				Podcast:     podcast,
				Title:       title,
				Description: description,
				// Several media of one entry share its date, keep them apart
				PublishedAt: published.Add(time.Duration(i) * time.Nanosecond),
				AudioURL:    audioURL,
			})
		}
	}

	backend.SortEpisodes(episodes)
	return episodes
}

// mediaURLs collects enclosure URLs of an item, falling back to Media RSS content.
// Items without any media are not playable and yield nothing.
func mediaURLs(item *gofeed.Item) []string {
	var urls []string

	for _, enclosure := range item.Enclosures {
		if enclosure == nil || enclosure.URL == "" {
			continue
		}
		urls = append(urls, enclosure.URL)
	}

	if len(urls) > 0 {
		return urls
	}

	for _, content := range item.Extensions["media"]["content"] {
		if url := content.Attrs["url"]; url != "" {
			urls = append(urls, url)
		}
	}

	return urls
}

// plainText strips markup from HTML descriptions
func plainText(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
