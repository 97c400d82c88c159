package domain

import "time"

// CacheEntry is a stored render fragment
type CacheEntry struct {
	Key       string
	Value     []byte
	Tags      []string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the entry is no longer valid at now
func (e CacheEntry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}
