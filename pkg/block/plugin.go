// Package block implements the recent content block: its configuration form, the cacheable
// build and the deferred content builder.
package block

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/freshblock/pkg/domain"
	"github.com/umputun/freshblock/pkg/render"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . ContentFetcher

// BuilderName is the name the deferred content builder is registered under
const BuilderName = "freshblock.recent_content"

// CacheTagContentList tags fragments depending on the content listing
const CacheTagContentList = "content_list"

//go:embed templates/*.html
var templatesFS embed.FS

// ContentFetcher loads the payload for a block configuration
type ContentFetcher interface {
	Fetch(ctx context.Context, cfg domain.BlockConfig, now time.Time) (domain.RenderPayload, error)
	Location(ctx context.Context) *time.Location
}

// Registrar is the placeholder registry the plugin builds into
type Registrar interface {
	Register(name string, b render.Builder)
	Placeholder(builder string, args []string, ttl time.Duration) (render.Placeholder, error)
}

// Plugin is the recent content block
type Plugin struct {
	fetcher  ContentFetcher
	registry Registrar
	tmpl     *template.Template
	policy   *bluemonday.Policy
	now      func() time.Time
}

// New makes the plugin and registers its deferred builder in registry.
// The now func is used as the fetch time, time.Now if nil.
func New(fetcher ContentFetcher, registry Registrar, now func() time.Time) (*Plugin, error) {
	if now == nil {
		now = time.Now
	}
	p := &Plugin{fetcher: fetcher, registry: registry, policy: bluemonday.UGCPolicy(), now: now}

	tmpl, err := template.New("block").Funcs(template.FuncMap{
		"isoTime":   func(t time.Time) string { return t.Format(time.RFC3339) },
		"clockTime": func(t time.Time) string { return t.Format("15:04") },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse block templates: %w", err)
	}
	p.tmpl = tmpl

	registry.Register(BuilderName, p.LazyLoad)
	return p, nil
}

// Build is the cacheable part of the block: a placeholder keyed by title, message and limit,
// cached for the configured hours
func (p *Plugin) Build(cfg domain.BlockConfig) (render.Placeholder, error) {
	ph, err := p.registry.Placeholder(BuilderName, LazyArgs(cfg), cfg.CacheTTL())
	if err != nil {
		return render.Placeholder{}, fmt.Errorf("build block: %w", err)
	}
	return ph, nil
}

// LazyArgs serializes the configuration parts the deferred builder needs
func LazyArgs(cfg domain.BlockConfig) []string {
	return []string{cfg.Title, cfg.NoResultsMessage, strconv.Itoa(cfg.ResultLimit)}
}

// ParseLazyArgs restores the configuration from serialized builder arguments
func ParseLazyArgs(args []string) (domain.BlockConfig, error) {
	if len(args) != 3 {
		return domain.BlockConfig{}, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}
	limit, err := strconv.Atoi(args[2])
	if err != nil {
		return domain.BlockConfig{}, fmt.Errorf("invalid limit %q: %w", args[2], err)
	}
	return domain.BlockConfig{Title: args[0], NoResultsMessage: args[1], ResultLimit: limit}, nil
}

// LazyLoad is the deferred builder: fetches today's content and renders it
func (p *Plugin) LazyLoad(ctx context.Context, args []string) (render.Fragment, error) {
	cfg, err := ParseLazyArgs(args)
	if err != nil {
		return render.Fragment{}, fmt.Errorf("recent content arguments: %w", err)
	}
	payload, err := p.fetcher.Fetch(ctx, cfg, p.now())
	if err != nil {
		return render.Fragment{}, fmt.Errorf("fetch recent content: %w", err)
	}
	html, err := p.Render(payload, p.fetcher.Location(ctx))
	if err != nil {
		return render.Fragment{}, err
	}
	return render.Fragment{HTML: html, Tags: []string{CacheTagContentList}}, nil
}

// Render themes a payload, item times are shown in loc
func (p *Plugin) Render(payload domain.RenderPayload, loc *time.Location) (template.HTML, error) {
	if loc == nil {
		return "", errors.New("render recent content: nil location")
	}
	items := make([]domain.ContentItem, len(payload.Items))
	for i, it := range payload.Items {
		it.Changed = it.Changed.In(loc)
		items[i] = it
	}
	data := struct {
		Title     string
		NoResults template.HTML
		Items     []domain.ContentItem
	}{
		Title:     payload.Title,
		NoResults: template.HTML(p.policy.Sanitize(payload.NoResultsMessage)), //nolint:gosec // sanitized
		Items:     items,
	}

	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, "recent-content", data); err != nil {
		return "", fmt.Errorf("render recent content: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}
