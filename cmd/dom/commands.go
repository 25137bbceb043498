package main

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/dom314/dom/pkg/backend/picks"
	"github.com/dom314/dom/pkg/model"
)

type EpisodesCommand struct {
	All  bool `long:"all" description:"Include listened episodes"`
	Asc  bool `long:"asc" description:"Oldest first"`
	Args struct {
		Group string `positional-arg-name:"GROUP" description:"beloved or timekilling"`
	} `positional-args:"yes" required:"yes"`
}

func (c *EpisodesCommand) Execute(_ []string) error {
	order := model.SortingDesc
	if c.Asc {
		order = model.SortingAsc
	}

	return withApp(func(ctx context.Context, app *App) error {
		return app.Episodes(ctx, c.Args.Group, c.All, order)
	})
}

type PodcastCommand struct {
	Desc bool `long:"desc" description:"Newest first"`
	Args struct {
		Backend string `positional-arg-name:"BACKEND"`
		FeedURL string `positional-arg-name:"FEED_URL"`
	} `positional-args:"yes" required:"yes"`
}

func (c *PodcastCommand) Execute(_ []string) error {
	order := model.SortingAsc
	if c.Desc {
		order = model.SortingDesc
	}

	return withApp(func(ctx context.Context, app *App) error {
		return app.Podcast(ctx, c.Args.Backend, c.Args.FeedURL, order)
	})
}

type SubscribeCommand struct {
	Backend string `long:"backend" short:"b" default:"rss" description:"Backend used to fetch the feed"`
	Args    struct {
		Group   string `positional-arg-name:"GROUP"`
		FeedURL string `positional-arg-name:"FEED_URL"`
	} `positional-args:"yes" required:"yes"`
}

func (c *SubscribeCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, app *App) error {
		return app.Subscribe(ctx, c.Args.Group, c.Args.FeedURL, c.Backend)
	})
}

type UnsubscribeCommand struct {
	Args struct {
		Group   string `positional-arg-name:"GROUP"`
		FeedURL string `positional-arg-name:"FEED_URL"`
	} `positional-args:"yes" required:"yes"`
}

func (c *UnsubscribeCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, app *App) error {
		return app.Unsubscribe(ctx, c.Args.Group, c.Args.FeedURL)
	})
}

type SubscriptionsCommand struct {
	Args struct {
		Group string `positional-arg-name:"GROUP"`
	} `positional-args:"yes" required:"yes"`
}

func (c *SubscriptionsCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, app *App) error {
		return app.Subscriptions(ctx, c.Args.Group)
	})
}

type audioArgs struct {
	AudioURL string `positional-arg-name:"AUDIO_URL"`
}

type ListenedCommand struct {
	Args audioArgs `positional-args:"yes" required:"yes"`
}

func (c *ListenedCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, app *App) error {
		return app.SetListened(ctx, c.Args.AudioURL, true)
	})
}

type UnlistenedCommand struct {
	Args audioArgs `positional-args:"yes" required:"yes"`
}

func (c *UnlistenedCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, app *App) error {
		return app.SetListened(ctx, c.Args.AudioURL, false)
	})
}

type PlayCommand struct {
	Args audioArgs `positional-args:"yes" required:"yes"`
}

func (c *PlayCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, app *App) error {
		return app.Play(ctx, c.Args.AudioURL)
	})
}

type DiscoverCommand struct {
	Args struct {
		Backend string `positional-arg-name:"BACKEND"`
	} `positional-args:"yes"`
}

func (c *DiscoverCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, app *App) error {
		return app.Discover(ctx, c.Args.Backend)
	})
}

type SearchCommand struct {
	Backend string `long:"backend" short:"b" description:"Discovery backend to search"`
	Args    struct {
		Query string `positional-arg-name:"QUERY"`
	} `positional-args:"yes" required:"yes"`
}

func (c *SearchCommand) Execute(_ []string) error {
	id := c.Backend
	if id == "" {
		id = picks.ID
	}

	return withApp(func(ctx context.Context, app *App) error {
		return app.Search(ctx, id, c.Args.Query)
	})
}

type ExportOPMLCommand struct {
	Output string `long:"output" short:"o" description:"Write to file instead of stdout"`
}

func (c *ExportOPMLCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, app *App) error {
		return writeOutput(c.Output, func(w io.Writer) error {
			return app.ExportOPML(ctx, w)
		})
	})
}

type ImportOPMLCommand struct {
	Group string `long:"group" short:"g" default:"beloved" description:"Group for feeds outside of a group outline"`
	Args  struct {
		File string `positional-arg-name:"FILE"`
	} `positional-args:"yes" required:"yes"`
}

func (c *ImportOPMLCommand) Execute(_ []string) error {
	f, err := os.Open(c.Args.File)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", c.Args.File)
	}
	defer f.Close()

	return withApp(func(ctx context.Context, app *App) error {
		return app.ImportOPML(ctx, f, c.Group)
	})
}

type ExportFeedCommand struct {
	Output string `long:"output" short:"o" description:"Write to file instead of stdout"`
	Link   string `long:"link" default:"http://localhost" description:"Link advertised by the feed"`
	Args   struct {
		Group string `positional-arg-name:"GROUP"`
	} `positional-args:"yes" required:"yes"`
}

func (c *ExportFeedCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, app *App) error {
		return writeOutput(c.Output, func(w io.Writer) error {
			return app.ExportFeed(ctx, c.Args.Group, c.Link, w)
		})
	})
}

type WatchCommand struct{}

func (c *WatchCommand) Execute(_ []string) error {
	return withApp(func(ctx context.Context, app *App) error {
		return app.Watch(ctx)
	})
}

func writeOutput(path string, fn func(w io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
