// Package feed renders block payloads as RSS 2.0 documents.
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/freshblock/pkg/domain"
)

// Generator creates RSS feeds from block payloads
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed for a block. The channel ttl follows the block cache hours,
// now is used as the build date.
func (g *Generator) GenerateRSS(block domain.Block, payload domain.RenderPayload, now time.Time) (string, error) {
	title := payload.Title
	if title == "" {
		title = block.Label
	}
	if title == "" {
		title = block.ID
	}

	rssItems := make([]*RSSItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		rssItems = append(rssItems, g.convertToRSSItem(item))
	}

	description := "Content changed today"
	if len(rssItems) == 0 {
		description = payload.NoResultsMessage
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   description,
			AtomLink:      &AtomLink{Href: fmt.Sprintf("%s/rss/%s", g.baseURL, block.ID), Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: now.Format(time.RFC1123Z),
			TTL:           int(block.Settings.CacheTTL() / time.Minute),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

func (g *Generator) convertToRSSItem(item domain.ContentItem) *RSSItem {
	return &RSSItem{
		Title:       item.Title,
		Link:        fmt.Sprintf("%s/#content-%d", g.baseURL, item.ID),
		GUID:        &RSSGUID{Value: item.UUID},
		Description: item.Body,
		PubDate:     item.Changed.Format(time.RFC1123Z),
		Category:    item.Type,
	}
}
