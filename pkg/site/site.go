// Package site provides site wide settings backed by the settings store
package site

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/freshblock/pkg/domain"
)

// SettingsStore reads and writes raw setting values
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Settings resolves site configuration, stored values take precedence over defaults
type Settings struct {
	store     SettingsStore
	defaultTZ string
}

// New makes Settings with the timezone used when nothing is stored
func New(store SettingsStore, defaultTZ string) *Settings {
	if defaultTZ == "" {
		defaultTZ = "UTC"
	}
	return &Settings{store: store, defaultTZ: defaultTZ}
}

// Timezone returns the site default timezone name
func (s *Settings) Timezone(ctx context.Context) string {
	tz, err := s.store.GetSetting(ctx, domain.SettingSiteTimezone)
	if err != nil {
		lgr.Printf("[WARN] can't read site timezone, using %s: %v", s.defaultTZ, err)
		return s.defaultTZ
	}
	if tz == "" {
		return s.defaultTZ
	}
	return tz
}

// SetTimezone validates and stores the site timezone
func (s *Settings) SetTimezone(ctx context.Context, tz string) error {
	if _, err := time.LoadLocation(tz); err != nil || tz == "" {
		return &domain.ValidationError{Field: "timezone", Reason: "unknown timezone"}
	}
	if err := s.store.SetSetting(ctx, domain.SettingSiteTimezone, tz); err != nil {
		return fmt.Errorf("store timezone: %w", err)
	}
	return nil
}
