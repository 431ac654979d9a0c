// Package config handles XDG configuration directory, the config file and
// backend settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tailscale/hujson"
)

const (
	// AppName is the application directory name.
	AppName = "tasksync"

	// ConfigFile is the optional JSONC config filename.
	ConfigFile = "config.json"

	// DefaultBaseURL is the remote store address used when nothing else is configured.
	DefaultBaseURL = "http://localhost:8000/api/"

	// BaseURLEnv overrides the config file base URL.
	BaseURLEnv = "TASKSYNC_BASE_URL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the remote store base address. Always ends with "/".
	BaseURL string

	// Timeout bounds each backend call. Zero leaves it to the transport.
	Timeout time.Duration

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Log receives debug output. Nil means discard.
	Log *slog.Logger
}

// fileConfig is the on-disk shape of config.json.
type fileConfig struct {
	BaseURL string `json:"base_url"`
	Timeout string `json:"timeout"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tasksync or $HOME/.config/tasksync.
// Settings are read from config.json in that directory if present, then
// overridden by TASKSYNC_BASE_URL.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, BaseURL: DefaultBaseURL}

	if err := cfg.load(); err != nil {
		return nil, err
	}
	if v := os.Getenv(BaseURLEnv); v != "" {
		cfg.BaseURL = v
	}
	if err := cfg.SetBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// SetBaseURL validates and normalizes the remote store address.
func (c *Config) SetBaseURL(raw string) error {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base url: %q", raw)
	}
	// Endpoint paths resolve against the base, which drops any query.
	if u.RawQuery != "" || u.Fragment != "" || u.ForceQuery {
		return fmt.Errorf("invalid base url: %q: query and fragment not allowed", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		if u.RawPath != "" {
			u.RawPath += "/"
		}
	}
	c.BaseURL = u.String()
	return nil
}

// Logger returns the configured logger, or one that discards everything.
func (c *Config) Logger() *slog.Logger {
	if c.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Log
}

// load reads config.json. A missing file is not an error.
func (c *Config) load() error {
	data, err := os.ReadFile(c.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	// Accept comments and trailing commas.
	std, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(std, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil || d < 0 {
			return fmt.Errorf("parse config: invalid timeout: %q", fc.Timeout)
		}
		c.Timeout = d
	}
	return nil
}
