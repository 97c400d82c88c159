// Package fetcher loads content changed during the current day for a block
package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/freshblock/pkg/domain"
)

//go:generate moq -out mocks/content_store.go -pkg mocks -skip-ensure -fmt goimports . ContentStore
//go:generate moq -out mocks/site_config.go -pkg mocks -skip-ensure -fmt goimports . SiteConfig

// ContentStore is the content query and batch load interface
type ContentStore interface {
	QueryIDs(ctx context.Context, q domain.ContentQuery) ([]int64, error)
	LoadMultiple(ctx context.Context, ids []int64) ([]domain.ContentItem, error)
}

// SiteConfig exposes the site default timezone
type SiteConfig interface {
	Timezone(ctx context.Context) string
}

// Fetcher builds render payloads of content changed today
type Fetcher struct {
	store ContentStore
	site  SiteConfig
}

// New makes a fetcher with injected store and site configuration
func New(store ContentStore, site SiteConfig) *Fetcher {
	return &Fetcher{store: store, site: site}
}

// Location resolves the site timezone, falling back to UTC for unknown zones
func (f *Fetcher) Location(ctx context.Context) *time.Location {
	tz := f.site.Timezone(ctx)
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		lgr.Printf("[WARN] unknown site timezone %q, using UTC: %v", tz, err)
		return time.UTC
	}
	return loc
}

// Fetch returns published content changed strictly inside the day containing now.
// Batch load failures are logged and produce an empty item list, query failures are returned.
func (f *Fetcher) Fetch(ctx context.Context, cfg domain.BlockConfig, now time.Time) (domain.RenderPayload, error) {
	payload := domain.RenderPayload{
		Title:            cfg.Title,
		NoResultsMessage: cfg.NoResultsMessage,
		Items:            []domain.ContentItem{},
	}

	window := TimeWindowFor(now, f.Location(ctx))
	q := domain.ContentQuery{
		ChangedAfter:  window.Start,
		ChangedBefore: window.End,
		PublishedOnly: true,
	}
	if cfg.ResultLimit > 0 {
		q.Offset, q.Limit = 0, cfg.ResultLimit
	}

	ids, err := f.store.QueryIDs(ctx, q)
	if err != nil {
		return payload, fmt.Errorf("query changed content: %w", err)
	}
	if len(ids) == 0 {
		return payload, nil
	}

	items, err := f.store.LoadMultiple(ctx, ids)
	if err != nil {
		lgr.Printf("[ERROR] failed to load %d content items for %s - %s: %v",
			len(ids), window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339), err)
		return payload, nil
	}
	if items != nil {
		payload.Items = items
	}
	return payload, nil
}
