// Package config provides the YAML-based application configuration with
// first-run creation, normalization of missing values, and atomic saves.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// OutDir is where calendar files and pages are written.
	OutDir string `yaml:"out_dir"`

	// Timezone is the IANA zone used for the local side of dual-time
	// display and for month grouping in the summary page.
	Timezone string `yaml:"timezone"`

	// HorizonDays is the rolling lookahead window.
	HorizonDays int `yaml:"horizon_days"`

	// UserAgent is sent on every outbound fetch.
	UserAgent string `yaml:"user_agent"`

	// FetchTimeout is a Go duration string for per-request timeouts.
	FetchTimeout string `yaml:"fetch_timeout"`

	// ContestFeedURL is the WA7BNM public Google Calendar ICS endpoint.
	ContestFeedURL string `yaml:"contest_feed_url"`

	// ContestPageURL is the ARRL contest-calendar page.
	ContestPageURL string `yaml:"contest_page_url"`

	// HamfestPageURL is a printf template with one %d page number.
	HamfestPageURL string `yaml:"hamfest_page_url"`

	// HamfestMaxPages bounds the pagination probe.
	HamfestMaxPages int `yaml:"hamfest_max_pages"`

	// RefreshCron is the serve-mode regeneration schedule.
	RefreshCron string `yaml:"refresh"`

	// Listen is the serve-mode HTTP address.
	Listen string `yaml:"listen"`
}

const wa7bnmCalendarID = "9o3or51jjdsantmsqoadmm949k@group.calendar.google.com"

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutDir:          "docs",
		Timezone:        "America/Chicago",
		HorizonDays:     62,
		UserAgent:       "HAMCAL/0.1 (+https://github.com/hamcal/hamcal)",
		FetchTimeout:    "30s",
		ContestFeedURL:  "https://calendar.google.com/calendar/ical/" + wa7bnmCalendarID + "/public/basic.ics",
		ContestPageURL:  "https://www.arrl.org/contest-calendar",
		HamfestPageURL:  "https://www.arrl.org/hamfests/search/page:%d/model:event",
		HamfestMaxPages: 12,
		RefreshCron:     "0 */6 * * *",
		Listen:          "127.0.0.1:8080",
	}
}

// Normalize fills missing or invalid values with defaults so partial
// configs from older versions keep working.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.OutDir == "" {
		c.OutDir = def.OutDir
	}
	if c.Timezone == "" {
		c.Timezone = def.Timezone
	}
	if c.HorizonDays <= 0 {
		c.HorizonDays = def.HorizonDays
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if _, err := time.ParseDuration(c.FetchTimeout); err != nil {
		c.FetchTimeout = def.FetchTimeout
	}
	if c.ContestFeedURL == "" {
		c.ContestFeedURL = def.ContestFeedURL
	}
	if c.ContestPageURL == "" {
		c.ContestPageURL = def.ContestPageURL
	}
	if c.HamfestPageURL == "" {
		c.HamfestPageURL = def.HamfestPageURL
	}
	if c.HamfestMaxPages <= 0 {
		c.HamfestMaxPages = def.HamfestMaxPages
	}
	if c.RefreshCron == "" {
		c.RefreshCron = def.RefreshCron
	}
	if c.Listen == "" {
		c.Listen = def.Listen
	}
}

// Location resolves the configured display timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// FetchTimeoutDuration returns the parsed fetch timeout.
func (c *Config) FetchTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// DefaultPath resolves the per-user config location.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("hamcal/config.yaml")
}

// Load reads configuration from the given YAML path. A missing file is
// treated as a first run: a default config is written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename) with
// 0600 permissions, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".hamcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
