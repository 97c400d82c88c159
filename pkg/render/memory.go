package render

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/umputun/freshblock/pkg/domain"
)

// MemoryCache is an in-process fragment cache
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]domain.CacheEntry
}

// NewMemoryCache makes an empty memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string]domain.CacheEntry{}}
}

// Get returns a live entry, dropping it when expired
func (c *MemoryCache) Get(_ context.Context, key string, now time.Time) (domain.CacheEntry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return domain.CacheEntry{}, false, nil
	}
	if e.Expired(now) {
		delete(c.entries, key)
		return domain.CacheEntry{}, false, nil
	}
	e.Value = slices.Clone(e.Value)
	return e, true, nil
}

// Set stores a copy of the entry
func (c *MemoryCache) Set(_ context.Context, entry domain.CacheEntry) error {
	entry.Value = slices.Clone(entry.Value)
	entry.Tags = slices.Clone(entry.Tags)
	c.mu.Lock()
	c.entries[entry.Key] = entry
	c.mu.Unlock()
	return nil
}

// InvalidateTags drops entries tagged with any of tags
func (c *MemoryCache) InvalidateTags(_ context.Context, tags ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		for _, tag := range tags {
			if slices.Contains(e.Tags, tag) {
				delete(c.entries, key)
				break
			}
		}
	}
	return nil
}

// Purge drops expired entries
func (c *MemoryCache) Purge(_ context.Context, now time.Time) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, e := range c.entries {
		if e.Expired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored entries, expired included
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
