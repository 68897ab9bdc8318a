// Package config handles loading and saving ABC configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/abc/internal/abc"
)

// Frontend names.
const (
	FrontendTUI   = "tui"   // Bubble Tea
	FrontendTcell = "tcell" // Raw tcell screen
)

// FileName is the config file looked up in the config directory.
const FileName = "config.yaml"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything ABC reads at startup. The special words are not
// configurable.
type Config struct {
	Assets   AssetsConfig `yaml:"assets"`
	Font     string       `yaml:"font,omitempty"` // Empty selects the built-in font
	Volume   float64      `yaml:"volume"`         // Log2 gain, 0 is unchanged
	Mute     bool         `yaml:"mute"`           // Validate cues but play nothing
	Frontend string       `yaml:"frontend"`       // tui or tcell
	Log      LogConfig    `yaml:"log"`
}

// AssetsConfig locates the audio cues.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
	Ext string `yaml:"ext"`
}

// LogConfig controls the slog output. Logs go to a file because the
// terminal belongs to the display.
type LogConfig struct {
	Level string `yaml:"level"`          // debug, info, warn, error
	File  string `yaml:"file,omitempty"` // Empty discards logs
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Dir: abc.AssetsDir,
			Ext: abc.AudioExt,
		},
		Frontend: FrontendTUI,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks the fields that have a fixed set of values.
func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendTUI, FrontendTcell:
	default:
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, c.Frontend)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Assets.Dir == "" {
		return fmt.Errorf("%w: assets dir is empty", ErrInvalidConfig)
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return lvl, nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "abc"), nil
}
