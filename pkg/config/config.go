// Package config handles loading and saving liftsheet configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/liftsheet/config.yaml
//   - Data:    ~/.local/share/liftsheet/ (workout data)
//   - State:   ~/.local/state/liftsheet/ (log files)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const appName = "liftsheet"

// Storage drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// StorageConfig selects the durable key-value backend.
type StorageConfig struct {
	Driver string `yaml:"driver,omitempty"` // file, sqlite, memory
	Dir    string `yaml:"dir,omitempty"`    // Data directory (default: XDG data dir)
}

// PersistenceConfig tunes write-back of the in-memory state.
type PersistenceConfig struct {
	DebounceMS  int  `yaml:"debounce_ms,omitempty"`
	WatchPollMS int  `yaml:"watch_poll_ms,omitempty"` // Stat interval when fsnotify is unavailable
	ForcePoll   bool `yaml:"force_poll,omitempty"`    // Poll the data file even if fsnotify works
}

// InputConfig controls parsing of user-entered sets.
type InputConfig struct {
	StrictNumbers bool `yaml:"strict_numbers,omitempty"` // Reject non-numeric weight/rest
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"` // Default: XDG state dir
}

// UIConfig holds terminal preferences.
type UIConfig struct {
	Accessible bool `yaml:"accessible,omitempty"` // Plain-text prompts even on a TTY
	WordWrap   int  `yaml:"word_wrap,omitempty"`
}

// Config is the top-level configuration for liftsheet.
type Config struct {
	Storage     StorageConfig     `yaml:"storage,omitempty"`
	Persistence PersistenceConfig `yaml:"persistence,omitempty"`
	Input       InputConfig       `yaml:"input,omitempty"`
	Log         LogConfig         `yaml:"log,omitempty"`
	UI          UIConfig          `yaml:"ui,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Driver: DriverFile,
			Dir:    DataDir(),
		},
		Persistence: PersistenceConfig{
			DebounceMS: 200,
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			WordWrap: 80,
		},
	}
}

// Debounce returns the persistence debounce window.
func (c Config) Debounce() time.Duration {
	if c.Persistence.DebounceMS <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(c.Persistence.DebounceMS) * time.Millisecond
}

// WatchPoll returns the data file polling interval.
func (c Config) WatchPoll() time.Duration {
	if c.Persistence.WatchPollMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(c.Persistence.WatchPollMS) * time.Millisecond
}

// LogPath returns the log file path, defaulting to the XDG state dir.
func (c Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, appName+".log")
}

// ConfigDir returns the XDG config directory for liftsheet.
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DataDir returns the XDG data directory for liftsheet.
func DataDir() string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// StateDir returns the XDG state directory for liftsheet.
func StateDir() string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, fallback, appName)
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	cfg.Storage.Dir = expandHome(cfg.Storage.Dir)
	cfg.Log.File = expandHome(cfg.Log.File)

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Persistence.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms cannot be negative")
	}
	if c.Persistence.WatchPollMS < 0 {
		return fmt.Errorf("watch_poll_ms cannot be negative")
	}
	return nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
