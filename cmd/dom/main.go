package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/dom314/dom/pkg/config"
)

type Opts struct {
	ConfigPath string `long:"config" short:"c" env:"DOM_CONFIG_PATH" description:"Path to config file, XDG config dirs are searched when omitted"`
	Debug      bool   `long:"debug" description:"Enable debug logging"`

	Episodes      EpisodesCommand      `command:"episodes" description:"List episodes of a subscription group"`
	Podcast       PodcastCommand       `command:"podcast" description:"List episodes of a single feed"`
	Subscribe     SubscribeCommand     `command:"subscribe" description:"Add a feed to a group"`
	Unsubscribe   UnsubscribeCommand   `command:"unsubscribe" description:"Remove a feed from a group"`
	Subscriptions SubscriptionsCommand `command:"subscriptions" description:"List feeds of a group"`
	Listened      ListenedCommand      `command:"listened" description:"Mark an episode as listened"`
	Unlistened    UnlistenedCommand    `command:"unlistened" description:"Mark an episode as not listened"`
	Play          PlayCommand          `command:"play" description:"Play an episode and mark it as listened"`
	Discover      DiscoverCommand      `command:"discover" description:"List discovery backends or the podcasts one offers"`
	Search        SearchCommand        `command:"search" description:"Search a discovery backend"`
	ExportOPML    ExportOPMLCommand    `command:"export-opml" description:"Export subscriptions as OPML"`
	ImportOPML    ImportOPMLCommand    `command:"import-opml" description:"Import subscriptions from OPML"`
	ExportFeed    ExportFeedCommand    `command:"export-feed" description:"Export the episodes of a group as a podcast feed"`
	Watch         WatchCommand         `command:"watch" description:"Keep feeds cached and report unlistened episodes periodically"`
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var opts Opts

func main() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stderr)

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if opts.Debug {
			log.SetLevel(log.DebugLevel)
		}

		log.WithFields(log.Fields{
			"version": version,
			"commit":  commit,
			"date":    date,
		}).Debug("running dom")

		return command.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(os.Stdout, flagsErr.Message)
				os.Exit(0)
			}

			fmt.Fprintln(os.Stderr, flagsErr.Message)
			os.Exit(2)
		}

		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// withApp loads configuration, opens the database and runs fn until it
// returns or the process is interrupted.
func withApp(fn func(ctx context.Context, app *App) error) error {
	log.Debugf("loading configuration %q", config.Locate(opts.ConfigPath))
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration file")
	}

	closer, err := setupLogging(cfg.Log, opts.Debug)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	app, err := NewApp(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.WithError(err).Error("failed to close database")
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return fn(ctx, app)
}

func setupLogging(cfg config.Log, debug bool) (io.Closer, error) {
	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrap(err, "invalid log level")
		}
		log.SetLevel(level)
	}

	if debug {
		log.SetLevel(log.DebugLevel)
	}

	if cfg.Filename == "" {
		return nil, nil
	}

	logger := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	log.SetOutput(logger)
	log.Debugf("writing logs to %s", cfg.Filename)
	return logger, nil
}
