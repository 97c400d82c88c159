package domain

import "time"

// SettingSiteTimezone is the settings key of the site default timezone
const SettingSiteTimezone = "site.timezone"

// Setting represents a key-value configuration setting
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
