package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in RSS links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:freshblock.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Site SiteConfig `yaml:"site" json:"site" jsonschema:"description=Site wide settings"`

	Render RenderConfig `yaml:"render" json:"render" jsonschema:"description=Block rendering configuration"`

	Cache CacheConfig `yaml:"cache" json:"cache" jsonschema:"description=Render cache configuration"`
}

// SiteConfig holds site wide defaults
type SiteConfig struct {
	Timezone string `yaml:"timezone" json:"timezone" jsonschema:"default=UTC,description=Default site timezone used when none is stored"`
}

// RenderConfig holds placeholder rendering settings
type RenderConfig struct {
	Lazy          bool `yaml:"lazy" json:"lazy" jsonschema:"default=false,description=Load block content after page load instead of substituting it server side"`
	MaxConcurrent int  `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=4,minimum=1,description=Maximum placeholders resolved concurrently per page"`
}

// CacheConfig holds render cache settings
type CacheConfig struct {
	Backend       string `yaml:"backend" json:"backend" jsonschema:"default=sqlite,enum=sqlite,enum=memory,description=Fragment cache storage"`
	PurgeSchedule string `yaml:"purge_schedule" json:"purge_schedule" jsonschema:"default=@every 1h,description=Cron schedule of expired cache entries purge"`
}

// cache backends
const (
	CacheBackendSQLite = "sqlite"
	CacheBackendMemory = "memory"
)

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults set, used when no file is given
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:freshblock.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Site.Timezone == "" {
		c.Site.Timezone = "UTC"
	}

	if c.Render.MaxConcurrent == 0 {
		c.Render.MaxConcurrent = 4
	}

	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheBackendSQLite
	}
	if c.Cache.PurgeSchedule == "" {
		c.Cache.PurgeSchedule = "@every 1h"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if _, err := time.LoadLocation(cfg.Site.Timezone); err != nil {
		return fmt.Errorf("site.timezone %q is not a known timezone", cfg.Site.Timezone)
	}
	if cfg.Render.MaxConcurrent < 1 {
		return fmt.Errorf("render.max_concurrent must be at least 1")
	}
	if !slices.Contains([]string{CacheBackendSQLite, CacheBackendMemory}, cfg.Cache.Backend) {
		return fmt.Errorf("cache.backend must be %s or %s", CacheBackendSQLite, CacheBackendMemory)
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetRenderConfig returns placeholder rendering configuration
func (c *Config) GetRenderConfig() RenderConfig {
	return c.Render
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
