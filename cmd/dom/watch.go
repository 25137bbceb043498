package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"github.com/dom314/dom/pkg/aggregate"
	"github.com/dom314/dom/pkg/model"
)

// Watch keeps the feed cache warm. On every tick of the wipe schedule cached
// feeds are dropped and all groups are loaded again.
func (a *App) Watch(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(log.StandardLogger()))))

	_, err := c.AddFunc(a.config.Cache.WipeSchedule, func() {
		log.Debug("wiping feed cache")
		a.cache.Wipe()
		a.refresh(ctx)
	})
	if err != nil {
		return errors.Wrapf(err, "can't create cron task for schedule %q", a.config.Cache.WipeSchedule)
	}

	// Initial load after start
	a.refresh(ctx)

	c.Start()
	log.Infof("watching subscriptions (refresh %s)", a.config.Cache.WipeSchedule)

	<-ctx.Done()

	log.Info("shutting down cron")
	<-c.Stop().Done()

	return nil
}

// refresh loads every group through the cache and reports unlistened counts
func (a *App) refresh(ctx context.Context) map[model.Group]int {
	counts := make(map[model.Group]int, len(model.Groups))

	for _, group := range model.Groups {
		started := time.Now()

		episodes, err := a.aggregator.EpisodesForGroup(ctx, group, model.SortingDesc)
		if err != nil && episodes == nil {
			log.WithError(err).WithField("group", group).Error("failed to load group")
			continue
		}

		unlistened, err := aggregate.Unlistened(ctx, a.state, episodes)
		if err != nil {
			log.WithError(err).WithField("group", group).Error("failed to check listened episodes")
			continue
		}

		counts[group] = len(unlistened)

		log.WithFields(log.Fields{
			"group":      group,
			"episodes":   len(episodes),
			"unlistened": len(unlistened),
			"took":       time.Since(started),
		}).Info("group refreshed")
	}

	return counts
}
