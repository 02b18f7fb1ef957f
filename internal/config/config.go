// Package config loads and saves user preferences for simshare.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	perrors "github.com/zhubert/simshare/internal/errors"
)

// MaxRecentSimulations caps the recently viewed list.
const MaxRecentSimulations = 5

var themeNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Config holds the application configuration
type Config struct {
	Theme                string   `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled bool     `json:"notifications_enabled,omitempty"` // Desktop notifications on share/invite
	WelcomeShown         bool     `json:"welcome_shown,omitempty"`         // Whether the welcome modal has been shown
	RecentSimulations    []string `json:"recent_simulations,omitempty"`    // Most recently opened first
	LastSeenVersion      string   `json:"last_seen_version,omitempty"`     // Last version whose changelog was shown

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".simshare"), nil
}

// DefaultPath returns ~/.simshare/config.json.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// New returns an empty config that saves to path.
func New(path string) *Config {
	return &Config{
		RecentSimulations: []string{},
		filePath:          path,
	}
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, perrors.ConfigLoadFailed("~/.simshare", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields an empty config.
func LoadFrom(path string) (*Config, error) {
	cfg := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}
	if cfg.RecentSimulations == nil {
		cfg.RecentSimulations = []string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Theme != "" && !themeNamePattern.MatchString(c.Theme) {
		return perrors.ConfigInvalid("invalid theme name " + c.Theme)
	}
	seen := make(map[string]bool)
	for _, id := range c.RecentSimulations {
		if id == "" {
			return perrors.ConfigInvalid("empty simulation id in recent list")
		}
		if seen[id] {
			return perrors.ConfigInvalid("duplicate simulation id in recent list: " + id)
		}
		seen[id] = true
	}
	return nil
}

// Path returns the file the config saves to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Save writes the config to disk. A config with no path is not persisted.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetTheme returns the saved theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// HasSeenWelcome returns whether the welcome modal has been shown
func (c *Config) HasSeenWelcome() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// MarkWelcomeShown marks the welcome modal as shown
func (c *Config) MarkWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}

// GetLastSeenVersion returns the last version whose changelog was shown
func (c *Config) GetLastSeenVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSeenVersion
}

// SetLastSeenVersion records the version whose changelog was shown
func (c *Config) SetLastSeenVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSeenVersion = version
}

// TouchSimulation moves id to the front of the recent list.
func (c *Config) TouchSimulation(id string) {
	if id == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	recent := []string{id}
	for _, r := range c.RecentSimulations {
		if r != id {
			recent = append(recent, r)
		}
	}
	if len(recent) > MaxRecentSimulations {
		recent = recent[:MaxRecentSimulations]
	}
	c.RecentSimulations = recent
}

// GetRecentSimulations returns a copy of the recent list, most recent first.
func (c *Config) GetRecentSimulations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recent := make([]string, len(c.RecentSimulations))
	copy(recent, c.RecentSimulations)
	return recent
}

// ClearHistory forgets recently opened simulations and shows the welcome
// modal again on next launch. Theme and notification settings are kept.
func (c *Config) ClearHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RecentSimulations = []string{}
	c.WelcomeShown = false
}
