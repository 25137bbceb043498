package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dom314/dom/pkg/aggregate"
	"github.com/dom314/dom/pkg/backend"
	"github.com/dom314/dom/pkg/backend/picks"
	"github.com/dom314/dom/pkg/backend/rss"
	"github.com/dom314/dom/pkg/cache"
	"github.com/dom314/dom/pkg/config"
	"github.com/dom314/dom/pkg/db"
	"github.com/dom314/dom/pkg/feed"
	"github.com/dom314/dom/pkg/model"
	"github.com/dom314/dom/pkg/player"
	"github.com/dom314/dom/pkg/state"
)

const timeFormat = "2006-01-02 15:04"

// App wires storage, backends and the feed cache behind the CLI commands
type App struct {
	config     *config.Config
	storage    db.Storage
	state      *state.Store
	registry   *backend.Registry
	cache      *cache.Cache
	aggregator *aggregate.Aggregator
	player     *player.Player
	out        io.Writer
	pretty     bool
}

func NewApp(cfg *config.Config, out io.Writer) (*App, error) {
	policy, err := aggregate.ParsePolicy(cfg.Aggregate.Policy)
	if err != nil {
		return nil, err
	}

	registry := backend.NewRegistry()
	if err := registry.RegisterFetcher(rss.ID, rss.New(&http.Client{})); err != nil {
		return nil, err
	}

	extra := make([]model.Podcast, 0, len(cfg.Picks))
	for _, pick := range cfg.Picks {
		extra = append(extra, pick.Podcast())
	}
	if err := registry.RegisterDiscoverer(picks.ID, picks.Name, picks.New(extra...)); err != nil {
		return nil, err
	}

	storage, err := db.NewBadger(&cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	var (
		store = state.New(storage)
		feeds = cache.New(registry, cfg.Cache.FetchTimeout)
	)

	return &App{
		config:   cfg,
		storage:  storage,
		state:    store,
		registry: registry,
		cache:    feeds,
		aggregator: aggregate.New(store, feeds,
			aggregate.WithPolicy(policy),
			aggregate.WithConcurrency(cfg.Aggregate.Concurrency),
		),
		player: player.New(cfg.Player.Command, cfg.Player.GUIArgs),
		out:    out,
		pretty: isTerminal(out),
	}, nil
}

func (a *App) Close() error {
	return a.storage.Close()
}

// Episodes prints the merged episodes of a group, unlistened ones unless all is set
func (a *App) Episodes(ctx context.Context, name string, all bool, order model.Sorting) error {
	group, err := model.ParseGroup(name)
	if err != nil {
		return err
	}

	episodes, err := a.aggregator.EpisodesForGroup(ctx, group, order)
	// Partial results were already reported by the aggregator
	if err != nil && episodes == nil {
		return errors.Wrapf(err, "failed to load %s", group)
	}

	if !all {
		episodes, err = aggregate.Unlistened(ctx, a.state, episodes)
		if err != nil {
			return err
		}
	}

	return a.printEpisodes(ctx, episodes, all)
}

// Podcast prints all episodes of one feed
func (a *App) Podcast(ctx context.Context, backendID string, feedURL string, order model.Sorting) error {
	episodes, err := a.aggregator.EpisodesForPodcast(ctx, backendID, feedURL, order)
	if err != nil {
		return err
	}

	return a.printEpisodes(ctx, episodes, true)
}

func (a *App) Subscribe(ctx context.Context, name string, feedURL string, backendID string) error {
	group, err := model.ParseGroup(name)
	if err != nil {
		return err
	}

	if _, err := a.registry.Fetcher(backendID); err != nil {
		return err
	}

	if err := a.state.SetSubscription(ctx, group, feedURL, backendID, true); err != nil {
		return err
	}

	log.WithFields(log.Fields{"group": group, "feed_url": feedURL}).Info("subscribed")
	return nil
}

func (a *App) Unsubscribe(ctx context.Context, name string, feedURL string) error {
	group, err := model.ParseGroup(name)
	if err != nil {
		return err
	}

	sub, err := a.state.Subscription(ctx, group, feedURL)
	if err != nil {
		return err
	}

	if err := a.state.SetSubscription(ctx, group, feedURL, sub.Backend, false); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"group":    group,
		"feed_url": feedURL,
		"backend":  sub.Backend,
	}).Info("unsubscribed")
	return nil
}

func (a *App) Subscriptions(ctx context.Context, name string) error {
	group, err := model.ParseGroup(name)
	if err != nil {
		return err
	}

	list, err := a.state.ListSubscriptions(ctx, group)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, sub := range list {
		rows = append(rows, []string{sub.FeedURL, sub.Backend})
	}

	a.printTable([]string{"Feed URL", "Backend"}, sortRows(rows), nil)
	return nil
}

func (a *App) SetListened(ctx context.Context, audioURL string, listened bool) error {
	return a.state.SetListened(ctx, audioURL, listened)
}

// Play starts the player and marks the episode as listened once it's running
func (a *App) Play(ctx context.Context, audioURL string) error {
	if err := a.player.Start(ctx, audioURL); err != nil {
		return err
	}

	return a.state.SetListened(ctx, audioURL, true)
}

// Discover lists discovery backends when id is empty, otherwise the podcasts of that backend
func (a *App) Discover(ctx context.Context, id string) error {
	if id == "" {
		discoverers := a.registry.Discoverers()

		rows := make([][]string, 0, len(discoverers))
		for _, d := range discoverers {
			rows = append(rows, []string{d.ID, d.Name})
		}

		a.printTable([]string{"ID", "Name"}, rows, nil)
		return nil
	}

	discoverer, err := a.registry.Discoverer(id)
	if err != nil {
		return err
	}

	podcasts, err := discoverer.Backend.Discovery(ctx)
	if err != nil {
		return errors.Wrapf(err, "discovery through %s failed", discoverer.Name)
	}

	a.printPodcasts(podcasts)
	return nil
}

func (a *App) Search(ctx context.Context, id string, query string) error {
	discoverer, err := a.registry.Discoverer(id)
	if err != nil {
		return err
	}

	podcasts, err := backend.Search(ctx, discoverer.Backend, query)
	if err != nil {
		return errors.Wrapf(err, "search through %s failed", discoverer.Name)
	}

	a.printPodcasts(podcasts)
	return nil
}

func (a *App) ExportOPML(ctx context.Context, w io.Writer) error {
	out, err := feed.BuildOPML(ctx, a.state, model.Groups)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

func (a *App) ImportOPML(ctx context.Context, r io.Reader, name string) error {
	group, err := model.ParseGroup(name)
	if err != nil {
		return err
	}

	imported, err := feed.ImportOPML(ctx, r, a.state, group)
	log.Infof("imported %d subscription(s)", imported)
	return err
}

// ExportFeed writes the merged episodes of a group as a podcast RSS document
func (a *App) ExportFeed(ctx context.Context, name string, link string, w io.Writer) error {
	group, err := model.ParseGroup(name)
	if err != nil {
		return err
	}

	episodes, err := a.aggregator.EpisodesForGroup(ctx, group, model.SortingDesc)
	// Partial results were already reported by the aggregator
	if err != nil && episodes == nil {
		return errors.Wrapf(err, "failed to load %s", group)
	}

	podcast, err := feed.Build(group, episodes, link)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, podcast.String())
	return err
}

func (a *App) printEpisodes(ctx context.Context, episodes []model.Episode, withState bool) error {
	headers := []string{"#", "Published", "Podcast", "Title", "Audio URL"}
	if withState {
		headers = append(headers, "Listened")
	}

	rows := make([][]string, 0, len(episodes))
	for i, episode := range episodes {
		row := []string{
			strconv.Itoa(i + 1),
			episode.PublishedAt.Format(timeFormat),
			episode.Podcast,
			episode.Title,
			episode.AudioURL,
		}

		if withState {
			listened, err := a.state.IsListened(ctx, episode.AudioURL)
			if err != nil {
				return err
			}
			row = append(row, yesNo(listened))
		}

		rows = append(rows, row)
	}

	a.printTable(headers, rows, []columnAlignment{alignRight})
	return nil
}

func (a *App) printPodcasts(podcasts []model.Podcast) {
	rows := make([][]string, 0, len(podcasts))
	for _, p := range podcasts {
		rows = append(rows, []string{p.Title, p.Backend, p.FeedURL})
	}

	a.printTable([]string{"Title", "Backend", "Feed URL"}, rows, nil)
}

func (a *App) printTable(headers []string, rows [][]string, aligns []columnAlignment) {
	fmt.Fprintln(a.out, renderTable(headers, rows, aligns, a.pretty))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
