package feed

import (
	"context"
	"encoding/xml"
	"io"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dom314/dom/pkg/model"
)

type opml struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    head
	Body    body
}

type head struct {
	XMLName xml.Name `xml:"head"`
	Title   string   `xml:"title"`
}

type body struct {
	XMLName  xml.Name  `xml:"body"`
	Outlines []outline `xml:"outline"`
}

type outline struct {
	Text     string    `xml:"text,attr"`
	Title    string    `xml:"title,attr,omitempty"`
	Type     string    `xml:"type,attr,omitempty"`
	XMLURL   string    `xml:"xmlUrl,attr,omitempty"`
	Backend  string    `xml:"backend,attr,omitempty"`
	Outlines []outline `xml:"outline"`
}

// Entry is a subscription read from an OPML document
type Entry struct {
	Group   model.Group
	FeedURL string
	Backend string
}

// BuildOPML exports the subscriptions of the given groups, one category outline per group.
func BuildOPML(ctx context.Context, lister subscriptionLister, groups []model.Group) (string, error) {
	ou := make([]outline, 0, len(groups))

	for _, group := range groups {
		subscriptions, err := lister.ListSubscriptions(ctx, group)
		if err != nil {
			return "", errors.Wrapf(err, "failed to list subscriptions of %q", group)
		}

		// Storage order is unspecified, keep exports stable
		sort.Slice(subscriptions, func(i, j int) bool {
			return subscriptions[i].FeedURL < subscriptions[j].FeedURL
		})

		category := outline{Text: string(group), Title: string(group)}
		for _, sub := range subscriptions {
			item := outline{Text: sub.FeedURL, Type: "rss", XMLURL: sub.FeedURL}
			if sub.Backend != model.DefaultBackend {
				item.Backend = sub.Backend
			}
			category.Outlines = append(category.Outlines, item)
		}

		ou = append(ou, category)
	}

	op := opml{Version: "1.0"}
	op.Head = head{Title: "dom314 subscriptions"}
	op.Body = body{Outlines: ou}

	out, err := xml.MarshalIndent(op, "", "\t")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal opml")
	}

	return xml.Header + string(out), nil
}

// ParseOPML reads subscriptions from an OPML document. Feeds nested in a category
// outline belong to the group named by the category, top level feeds go to
// defaultGroup. Categories that don't name a group are reported as errors.
func ParseOPML(r io.Reader, defaultGroup model.Group) ([]Entry, error) {
	var doc opml
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode opml")
	}

	var (
		entries []Entry
		result  *multierror.Error
	)

	for _, ou := range doc.Body.Outlines {
		if ou.XMLURL != "" {
			entries = append(entries, newEntry(defaultGroup, ou))
			continue
		}

		group, err := model.ParseGroup(ou.Text)
		if err != nil {
			result = multierror.Append(result, errors.Wrap(err, "opml category"))
			continue
		}

		for _, child := range flatten(ou.Outlines) {
			entries = append(entries, newEntry(group, child))
		}
	}

	return entries, result.ErrorOrNil()
}

// ImportOPML subscribes all feeds of an OPML document and returns the number of
// subscriptions written. Errors are collected, valid entries are still imported.
func ImportOPML(ctx context.Context, r io.Reader, setter subscriptionSetter, defaultGroup model.Group) (int, error) {
	entries, parseErr := ParseOPML(r, defaultGroup)

	var result *multierror.Error
	if parseErr != nil {
		if merr, ok := parseErr.(*multierror.Error); ok {
			result = merr
		} else {
			return 0, parseErr
		}
	}

	imported := 0
	for _, entry := range entries {
		if err := setter.SetSubscription(ctx, entry.Group, entry.FeedURL, entry.Backend, true); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "failed to subscribe %s", entry.FeedURL))
			continue
		}

		log.WithFields(log.Fields{
			"group":    entry.Group,
			"feed_url": entry.FeedURL,
		}).Debug("imported subscription")
		imported++
	}

	return imported, result.ErrorOrNil()
}

func newEntry(group model.Group, ou outline) Entry {
	backend := ou.Backend
	if backend == "" {
		backend = model.DefaultBackend
	}

	return Entry{Group: group, FeedURL: ou.XMLURL, Backend: backend}
}

// flatten collects feed outlines from nested folders
func flatten(outlines []outline) []outline {
	var out []outline
	for _, ou := range outlines {
		if ou.XMLURL != "" {
			out = append(out, ou)
		}
		out = append(out, flatten(ou.Outlines)...)
	}
	return out
}
