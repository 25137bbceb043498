// Package picks is a discovery backend serving a hand-curated podcast list.
package picks

import (
	"context"

	"github.com/dom314/dom/pkg/backend"
	"github.com/dom314/dom/pkg/model"
)

const (
	ID   = "picks"
	Name = "Michcio's picks"
)

var defaultPicks = []model.Podcast{
	{
		Backend:     "rss",
		FeedURL:     "https://2pady.pl/feed/podcast",
		Title:       "2pady.pl",
		Description: "Między indie a mainstreamem, casualem a hardcorem, rozrywką a tworzeniem - o grach, z wyobraźnią. Współtworzony przez pasjonatów na co dzień pracujących w branży, pełen pierwszych wrażeń, recenzji i relacji. Już ponad 10 lat snujemy opowieści o krnąbrnych herosach, zawiłych intrygach, poruszających narracjach, całych krainach najeżonych potworami i magicznymi artefaktami. A o czym opowiemy dzisiaj?",
	},
}

type Backend struct {
	podcasts []model.Podcast
}

var _ backend.DiscoveryBackend = (*Backend)(nil)

// New returns the built-in picks followed by extra ones
func New(extra ...model.Podcast) *Backend {
	podcasts := make([]model.Podcast, 0, len(defaultPicks)+len(extra))
	podcasts = append(podcasts, defaultPicks...)
	podcasts = append(podcasts, extra...)

	return &Backend{podcasts: podcasts}
}

func (b *Backend) Discovery(_ context.Context) ([]model.Podcast, error) {
	out := make([]model.Podcast, len(b.podcasts))
	copy(out, b.podcasts)
	return out, nil
}
