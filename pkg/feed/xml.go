package feed

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	itunes "github.com/eduncan911/podcast"
	"github.com/pkg/errors"

	"github.com/dom314/dom/pkg/aggregate"
	"github.com/dom314/dom/pkg/model"
)

const (
	domGenerator    = "dom314 group export"
	defaultCategory = "Leisure"
)

// Build renders the merged episodes of a group as a podcast feed, newest first.
func Build(group model.Group, episodes []model.Episode, link string) (*itunes.Podcast, error) {
	var (
		now         = time.Now().UTC()
		title       = fmt.Sprintf("dom314: %s", group)
		description = fmt.Sprintf("Episodes of podcasts subscribed in the %q group", group)
		pubDate     = now
	)

	sorted := make([]model.Episode, len(episodes))
	copy(sorted, episodes)
	aggregate.Sort(sorted, model.SortingDesc)

	if len(sorted) > 0 {
		pubDate = sorted[0].PublishedAt
	}

	p := itunes.New(title, link, description, &pubDate, &now)
	p.Generator = domGenerator
	p.AddSubTitle(title)
	p.AddSummary(description)
	p.AddCategory(defaultCategory, nil)
	p.IAuthor = title
	p.IExplicit = "no"

	for i, episode := range sorted {
		item := itunes.Item{
			GUID:        episode.AudioURL,
			Link:        episode.AudioURL,
			Title:       itemTitle(episode),
			Description: episode.Description,
			ISubtitle:   episode.Title,
			// Some app prefer 1-based order
			IOrder: strconv.Itoa(i + 1),
		}

		pubDate := episode.PublishedAt
		item.AddPubDate(&pubDate)
		item.AddSummary(episode.Description)
		item.AddEnclosure(episode.AudioURL, enclosureType(episode.AudioURL), 0)

		// p.AddItem requires description to be not empty, use workaround
		if item.Description == "" {
			item.Description = " "
		}

		if _, err := p.AddItem(item); err != nil {
			return nil, errors.Wrapf(err, "failed to add item to podcast (audio %q)", episode.AudioURL)
		}
	}

	return &p, nil
}

func itemTitle(episode model.Episode) string {
	switch {
	case episode.Podcast == "":
		return episode.Title
	case episode.Title == "" || episode.Title == episode.Podcast:
		return episode.Podcast
	default:
		return fmt.Sprintf("[%s] %s", episode.Podcast, episode.Title)
	}
}

func enclosureType(audioURL string) itunes.EnclosureType {
	ext := strings.ToLower(path.Ext(strings.SplitN(audioURL, "?", 2)[0]))
	switch ext {
	case ".m4a":
		return itunes.M4A
	case ".mp4":
		return itunes.MP4
	case ".m4v":
		return itunes.M4V
	case ".mov":
		return itunes.MOV
	default:
		return itunes.MP3
	}
}
