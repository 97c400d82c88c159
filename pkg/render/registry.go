// Package render implements two-phase rendering with deferred placeholders.
//
// Phase one emits a cache-stable shell with a placeholder marker whose token is derived from
// the builder name and its arguments. Phase two resolves a token out-of-band by calling the
// registered builder, caching the produced fragment for the placeholder TTL.
package render

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"slices"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/freshblock/pkg/domain"
)

// ErrUnknownPlaceholder is returned for tokens never issued by the registry
var ErrUnknownPlaceholder = errors.New("unknown placeholder")

// ErrUnknownBuilder is returned when a placeholder refers to a builder not registered
var ErrUnknownBuilder = errors.New("unknown builder")

var markerRe = regexp.MustCompile(`<freshblock-placeholder token="([0-9a-f]+)"></freshblock-placeholder>`)

// Builder produces the deferred content for a placeholder from its serialized arguments
type Builder func(ctx context.Context, args []string) (Fragment, error)

// Fragment is a rendered piece of html with the cache tags it depends on
type Fragment struct {
	HTML template.HTML
	Tags []string
}

// Cache stores resolved fragments
type Cache interface {
	Get(ctx context.Context, key string, now time.Time) (domain.CacheEntry, bool, error)
	Set(ctx context.Context, entry domain.CacheEntry) error
	InvalidateTags(ctx context.Context, tags ...string) error
	Purge(ctx context.Context, now time.Time) (int, error)
}

// Placeholder is the phase one handle of deferred content
type Placeholder struct {
	Token   string
	Builder string
	Args    []string
	TTL     time.Duration
}

// Markup is the marker substituted server side
func (p Placeholder) Markup() template.HTML {
	return template.HTML(`<freshblock-placeholder token="` + p.Token + `"></freshblock-placeholder>`) //nolint:gosec // token is hex
}

// LazyMarkup is an htmx loader fetching the content from path + token after page load
func (p Placeholder) LazyMarkup(path string) template.HTML {
	return template.HTML(fmt.Sprintf(`<div class="placeholder" hx-get="%s%s" hx-trigger="load" hx-swap="outerHTML"></div>`, //nolint:gosec // token is hex
		template.HTMLEscapeString(path), p.Token))
}

// Config for the registry
type Config struct {
	MaxConcurrent int              // concurrent resolutions in Substitute
	Now           func() time.Time // clock, time.Now if nil
}

// Registry keeps builders and issued placeholders
type Registry struct {
	cache         Cache
	now           func() time.Time
	maxConcurrent int

	mu           sync.RWMutex
	builders     map[string]Builder
	placeholders map[string]Placeholder
}

// NewRegistry makes a registry using cache for resolved fragments
func NewRegistry(cache Cache, cfg Config) *Registry {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 4
	}
	return &Registry{
		cache:         cache,
		now:           cfg.Now,
		maxConcurrent: cfg.MaxConcurrent,
		builders:      map[string]Builder{},
		placeholders:  map[string]Placeholder{},
	}
}

// Register adds a named builder callback, replacing an existing one with the same name
func (r *Registry) Register(name string, b Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[name] = b
}

// Token derives the content addressed token for a builder and its arguments
func Token(builder string, args []string) string {
	data, _ := json.Marshal(struct { //nolint:errchkjson // strings always marshal
		Builder string   `json:"builder"`
		Args    []string `json:"args"`
	}{Builder: builder, Args: args})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:16])
}

// TokenTag is the cache tag every resolved fragment carries for its own token
func TokenTag(token string) string {
	return "placeholder:" + token
}

// Placeholder issues a placeholder for builder with args. The same builder and args always give
// the same token, the ttl of the latest issue applies to the next resolution.
func (r *Registry) Placeholder(builder string, args []string, ttl time.Duration) (Placeholder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.builders[builder]; !ok {
		return Placeholder{}, fmt.Errorf("placeholder for %q: %w", builder, ErrUnknownBuilder)
	}

	p := Placeholder{Token: Token(builder, args), Builder: builder, Args: append([]string(nil), args...), TTL: ttl}
	r.placeholders[p.Token] = p
	return p, nil
}

// Resolve produces the content of a placeholder, from cache when possible
func (r *Registry) Resolve(ctx context.Context, token string) (template.HTML, error) {
	r.mu.RLock()
	p, ok := r.placeholders[token]
	var b Builder
	if ok {
		b = r.builders[p.Builder]
	}
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("resolve %s: %w", token, ErrUnknownPlaceholder)
	}
	if b == nil {
		return "", fmt.Errorf("resolve %s: %w", token, ErrUnknownBuilder)
	}

	now := r.now()
	if p.TTL > 0 {
		entry, found, err := r.cache.Get(ctx, token, now)
		if err != nil {
			lgr.Printf("[WARN] render cache get %s: %v", token, err)
		}
		if found {
			return template.HTML(entry.Value), nil //nolint:gosec // cached builder output
		}
	}

	frag, err := b(ctx, p.Args)
	if err != nil {
		return "", fmt.Errorf("build %s for %s: %w", p.Builder, token, err)
	}

	if p.TTL > 0 {
		entry := domain.CacheEntry{
			Key:       token,
			Value:     []byte(frag.HTML),
			Tags:      append(slices.Clone(frag.Tags), TokenTag(token)),
			ExpiresAt: now.Add(p.TTL),
			CreatedAt: now,
		}
		if err := r.cache.Set(ctx, entry); err != nil {
			lgr.Printf("[WARN] render cache set %s: %v", token, err)
		}
	}
	return frag.HTML, nil
}

// Substitute replaces every placeholder marker in page with resolved content. A placeholder
// failing to resolve is logged and replaced with nothing.
func (r *Registry) Substitute(ctx context.Context, page []byte) ([]byte, error) {
	matches := markerRe.FindAllSubmatch(page, -1)
	if len(matches) == 0 {
		return page, nil
	}

	var mu sync.Mutex
	resolved := make(map[string][]byte, len(matches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxConcurrent)
	for _, m := range matches {
		token := string(m[1])
		mu.Lock()
		if _, seen := resolved[token]; seen {
			mu.Unlock()
			continue
		}
		resolved[token] = nil
		mu.Unlock()

		g.Go(func() error {
			html, err := r.Resolve(gctx, token)
			if err != nil {
				lgr.Printf("[ERROR] can't resolve placeholder: %v", err)
			}
			mu.Lock()
			resolved[token] = []byte(html)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("substitute placeholders: %w", err)
	}

	return markerRe.ReplaceAllFunc(page, func(marker []byte) []byte {
		token := markerRe.FindSubmatch(marker)[1]
		return bytes.Clone(resolved[string(token)])
	}), nil
}

// Invalidate drops cached fragments carrying any of the tags
func (r *Registry) Invalidate(ctx context.Context, tags ...string) error {
	if err := r.cache.InvalidateTags(ctx, tags...); err != nil {
		return fmt.Errorf("invalidate %v: %w", tags, err)
	}
	return nil
}

// Purge removes expired fragments from the cache
func (r *Registry) Purge(ctx context.Context) (int, error) {
	n, err := r.cache.Purge(ctx, r.now())
	if err != nil {
		return 0, fmt.Errorf("purge render cache: %w", err)
	}
	return n, nil
}
