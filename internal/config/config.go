// Package config loads fret's settings from defaults, a TOML file and
// command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/fret/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config                     `toml:"logger"`  // [logger] table
	Editor  EditorConfig                      `toml:"editor"`  // [editor] table
	Plugins map[string]map[string]interface{} `toml:"plugins"` // [plugins.<name>] tables
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	// MaxUndo is the maximum undo depth: 0 disables history, a negative
	// value is unbounded.
	MaxUndo         int      `toml:"max_undo"`
	GridDivision    int      `toml:"grid_division"`
	DefaultDuration float64  `toml:"default_duration"`
	Tuning          []string `toml:"tuning"`
	SystemClipboard bool     `toml:"system_clipboard"`
	StatusBarHeight int      `toml:"status_bar_height"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error

	// undoMu guards Editor.MaxUndo, which :undolevels changes at runtime.
	undoMu sync.RWMutex
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // resolved by cmd/fret
		},
		Editor: EditorConfig{
			MaxUndo:         DefaultMaxUndo,
			GridDivision:    DefaultGridDivision,
			DefaultDuration: DefaultDuration,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
		Plugins: make(map[string]map[string]interface{}),
	}
}

// loadFromFile decodes filePath over cfg. Keys absent from the file keep
// their current values. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) error {
	_, err := os.Stat(filePath)
	if errors.Is(err, os.ErrNotExist) {
		logger.DebugTagf("config", "Config file not found: %s", filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate resets invalid values to their defaults. MaxUndo accepts any
// integer.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.GridDivision <= 0 || c.Editor.GridDivision > MaxGridDivision {
		c.Editor.GridDivision = defaults.Editor.GridDivision
	}
	if c.Editor.DefaultDuration <= 0 || c.Editor.DefaultDuration > 1 {
		c.Editor.DefaultDuration = defaults.Editor.DefaultDuration
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Plugins == nil {
		c.Plugins = defaults.Plugins
	}
}

// DefaultConfigPath returns ~/.config/fret/config.toml, or "" if the user
// config directory is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// load builds a config from defaults, the file at path and flag overrides.
func load(path string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	var err error
	if path != "" {
		err = loadFromFile(cfg, path)
	}
	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig loads the configuration once and stores it for Get. An empty
// configFilePath uses DefaultConfigPath. A file error is returned alongside
// a usable config built from defaults and flags.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		effectivePath := configFilePath
		if effectivePath == "" {
			effectivePath = DefaultConfigPath()
		}
		loadedConfig, loadErr = load(effectivePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}

// MaxUndo returns the current maximum undo depth.
func (c *Config) MaxUndo() int {
	undoMu.RLock()
	defer undoMu.RUnlock()
	return c.Editor.MaxUndo
}

// SetMaxUndo changes the maximum undo depth at runtime.
func (c *Config) SetMaxUndo(n int) {
	undoMu.Lock()
	c.Editor.MaxUndo = n
	undoMu.Unlock()
	logger.DebugTagf("config", "max undo set to %d", n)
}

// GridStep returns the cursor step in whole notes.
func (c *Config) GridStep() float64 {
	return 1 / float64(c.Editor.GridDivision)
}

// PluginValue returns a value from the [plugins.<name>] table.
func (c *Config) PluginValue(plugin, key string) (interface{}, bool) {
	table, ok := c.Plugins[plugin]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}
