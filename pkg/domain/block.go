package domain

import (
	"fmt"
	"time"
)

// CacheHourOptions lists the allowed values for BlockConfig.CacheHours
var CacheHourOptions = []int{1, 6, 12, 24, 36, 48}

// BlockConfig holds the settings of a single recent content block
type BlockConfig struct {
	Title            string `json:"title"`
	NoResultsMessage string `json:"no_results_message"`
	CacheHours       int    `json:"how_many_hours_to_cache"`
	ResultLimit      int    `json:"how_many_to_show"`
}

// CacheTTL returns the intended refresh cadence of the block content
func (c BlockConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheHours) * time.Hour
}

// Block is a placed block instance
type Block struct {
	ID        string      `json:"id"` // machine name
	Label     string      `json:"label"`
	Region    string      `json:"region"`
	Weight    int         `json:"weight"`
	Settings  BlockConfig `json:"settings"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// RenderPayload is the result of a content fetch handed to the theme layer
type RenderPayload struct {
	Title            string        `json:"title"`
	NoResultsMessage string        `json:"no_results_message"`
	Items            []ContentItem `json:"content"`
}

// ValidationError reports a rejected form field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}
