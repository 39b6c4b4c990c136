package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the runtime configuration loaded from YAML
type Config struct {
	Viewport       ViewportConfig      `yaml:"viewport"`
	Vsync          bool                `yaml:"vsync"`
	HoldWindow     time.Duration       `yaml:"hold_window"`
	RepeatInterval time.Duration       `yaml:"repeat_interval"` // Widest gap still treated as auto-repeat
	Log            LogConfig           `yaml:"log"`
	Keys           map[string][]string `yaml:"keys"`
}

// ViewportConfig is the unzoomed view size in world units
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig selects logger level, format and destination
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
	File   string `yaml:"file"`   // Empty discards; the terminal owns stdout
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Width:  parameter.DefaultViewportWidth,
			Height: parameter.DefaultViewportHeight,
		},
		Vsync:          true,
		HoldWindow:     parameter.InputHoldWindow,
		RepeatInterval: parameter.InputRepeatInterval,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   "henshin.log",
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns the default action bindings
func DefaultKeys() map[string][]string {
	return map[string][]string{
		"move_up":      {"w", "up"},
		"move_down":    {"s", "down"},
		"move_left":    {"a", "left"},
		"move_right":   {"d", "right"},
		"activate":     {"e"},
		"zoom_in":      {"]"},
		"zoom_out":     {"["},
		"spawn_npc":    {"f"},
		"despawn_npcs": {"g"},
		"toggle_vsync": {"v"},
		"quit":         {"esc", "ctrl_c"},
	}
}

// Load reads a YAML file over the defaults
// A missing path returns the defaults unchanged
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
// Key bindings present in the document replace the default bindings of that action only
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	defaults := cfg.Keys
	cfg.Keys = nil

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	merged := make(map[string][]string, len(defaults))
	for action, keys := range defaults {
		merged[action] = keys
	}
	for action, keys := range cfg.Keys {
		merged[action] = keys
	}
	cfg.Keys = merged

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and names
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %dx%d", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	}
	if c.HoldWindow < 0 {
		return fmt.Errorf("%w: hold_window must not be negative", ErrInvalidConfig)
	}
	if c.RepeatInterval < 0 {
		return fmt.Errorf("%w: repeat_interval must not be negative", ErrInvalidConfig)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q, want text or json", ErrInvalidConfig, c.Log.Format)
	}
	for action := range c.Keys {
		if _, err := input.ParseAction(action); err != nil {
			return fmt.Errorf("%w: keys: %v", ErrInvalidConfig, err)
		}
	}
	for _, a := range input.Actions() {
		if len(c.Keys[a.String()]) == 0 {
			return fmt.Errorf("%w: keys: action %s has no binding", ErrInvalidConfig, a)
		}
	}
	return nil
}
