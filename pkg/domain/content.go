package domain

import "time"

// ContentItem represents a content entity tracked by the content store
type ContentItem struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	AuthorID  int64     `json:"author_id"`
	Published bool      `json:"published"`
	Created   time.Time `json:"created"`
	Changed   time.Time `json:"changed"`
}

// TimeWindow is the span of one calendar day, both bounds at second precision
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls strictly inside the window
func (w TimeWindow) Contains(t time.Time) bool {
	return t.After(w.Start) && t.Before(w.End)
}

// ContentQuery describes a lookup of content ids changed inside a window
type ContentQuery struct {
	ChangedAfter  time.Time // exclusive
	ChangedBefore time.Time // exclusive
	PublishedOnly bool
	Offset        int
	Limit         int // 0 means no limit
}
