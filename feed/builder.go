package feed

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"

	"radioflux/config"
	"radioflux/playlist"
)

// pubDateFormat is the RFC 2822 date form RSS readers expect.
const pubDateFormat = "Mon, 02 Jan 2006 15:04:05 +0000"

// Build assembles the feed document. Every station becomes one entry whose
// link, guid, and enclosure all carry the stream URL verbatim; the pubDate is
// captured once for the whole document. Stations are expected to arrive with
// logos already resolved.
func Build(stations []playlist.Station) *RSS {
	cfg := config.GetConfig()
	now := time.Now().UTC().Format(pubDateFormat)

	channel := Channel{
		Title:       cfg.FeedTitle,
		Description: cfg.FeedDescription,
		Link:        cfg.FeedLink,
		Language:    cfg.FeedLanguage,
	}

	if cfg.FeedImageURL != "" {
		channel.Image = &Image{
			URL:   cfg.FeedImageURL,
			Title: cfg.FeedTitle,
			Link:  cfg.FeedLink,
		}
	}

	for _, station := range stations {
		item := Item{
			Title:       station.Name,
			Description: fmt.Sprintf("Live stream for %s", station.Name),
			Link:        station.URL,
			GUID:        station.URL,
			PubDate:     now,
			Duration:    "00:00:00", // continuous stream
			Explicit:    "no",
			Enclosure: Enclosure{
				URL:    station.URL,
				Type:   "audio/mpeg",
				Length: "0",
			},
		}
		if station.LogoURL != "" {
			item.Image = &ItunesImage{Href: station.LogoURL}
		}
		channel.Items = append(channel.Items, item)
	}

	return &RSS{
		Version:  "2.0",
		ItunesNS: itunesNamespace,
		Channel:  channel,
	}
}

// Save pretty-prints the document into dir, creating it if absent. The file
// name is the slugged channel title.
func (r *RSS) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating feed directory %s: %w", dir, err)
	}

	data, err := xml.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling feed: %w", err)
	}

	path := filepath.Join(dir, slug.Make(r.Channel.Title)+".xml")
	content := append([]byte(xml.Header), data...)
	if err := os.WriteFile(path, append(content, '\n'), 0644); err != nil {
		return "", fmt.Errorf("error writing feed %s: %w", path, err)
	}

	return path, nil
}
