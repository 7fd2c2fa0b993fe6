// Package config provides configuration loading from YAML files and
// environment variables. Environment variables take precedence for dev
// flexibility.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/frayle/stickpad/internal/joystick"
)

// Config holds the full application configuration, assembled from YAML + env.
type Config struct {
	Window WindowConfig  `yaml:"window"`
	Sticks []StickConfig `yaml:"sticks"`
}

// WindowConfig holds the window geometry and overlay settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Resizable  bool   `yaml:"resizable"`
	ShowValues bool   `yaml:"show_values"`
}

// StickConfig holds the settings of one joystick widget.
type StickConfig struct {
	ID string `yaml:"id"`
	// Mode is "all", "x", "y", or "none".
	Mode string `yaml:"mode"`
	// Sticky keeps the knob where it was released instead of snapping back.
	Sticky bool `yaml:"sticky"`
	// Colors are "#rrggbb" strings; empty fields use the reference palette.
	BaseColor string `yaml:"base_color"`
	KnobColor string `yaml:"knob_color"`
	HintColor string `yaml:"hint_color"`
	// Region places the widget in the window in normalized 0..1 coordinates.
	Region RegionConfig `yaml:"region"`
}

// RegionConfig is a normalized rectangle inside the window.
type RegionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Default returns the configuration used when no file exists: a single
// all-axis stick filling the window.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "stickpad",
			Width:  480,
			Height: 480,
		},
		Sticks: []StickConfig{
			{
				ID:     "stick",
				Mode:   joystick.AllAxis.String(),
				Region: RegionConfig{X: 0, Y: 0, W: 1, H: 1},
			},
		},
	}
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "stickpad")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	// Allow override via environment variable
	if p := os.Getenv("STICKPAD_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Load assembles configuration from the YAML file and environment variables.
// Environment variables always take precedence. A missing file yields the
// default configuration.
func Load() (*Config, error) {
	cfg := Default()

	configPath := DefaultConfigPath()
	if data, err := os.ReadFile(configPath); err == nil {
		// Start from an empty config so a file with sticks fully
		// replaces the default stick list.
		cfg = &Config{Window: Default().Window}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", configPath, err)
		}
		if len(cfg.Sticks) == 0 {
			cfg.Sticks = Default().Sticks
		}
		for i := range cfg.Sticks {
			if cfg.Sticks[i].Mode == "" {
				cfg.Sticks[i].Mode = joystick.AllAxis.String()
			}
		}
	}

	if v := os.Getenv("STICKPAD_TITLE"); v != "" {
		cfg.Window.Title = v
	}
	if v := os.Getenv("STICKPAD_SHOW_VALUES"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parsing STICKPAD_SHOW_VALUES: %w", err)
		}
		cfg.Window.ShowValues = show
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks stick modes, colors, and regions.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	seen := map[string]bool{}
	for _, s := range c.Sticks {
		if s.ID == "" {
			return fmt.Errorf("stick without an id")
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate stick id %q", s.ID)
		}
		seen[s.ID] = true
		if _, err := joystick.ParseMode(s.Mode); err != nil {
			return fmt.Errorf("stick %q: %w", s.ID, err)
		}
		if s.Region.W <= 0 || s.Region.H <= 0 {
			return fmt.Errorf("stick %q: region %vx%v is not positive", s.ID, s.Region.W, s.Region.H)
		}
	}
	return nil
}

// WriteConfigFile writes the config to the YAML file, creating the directory
// if needed.
func WriteConfigFile(cfg *Config) error {
	dir := filepath.Dir(DefaultConfigPath())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(DefaultConfigPath(), data, 0o644)
}
