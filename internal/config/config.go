package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ytget/cooking/internal/parallax"
)

// EnvConfigPath names the environment variable holding a user config file
const EnvConfigPath = "COOKING_CONFIG"

// ErrInvalidConfig is returned by Validate for out-of-range values
var ErrInvalidConfig = errors.New("invalid config")

//go:embed defaults.toml
var defaultsTOML []byte

// Config is the theme and layout configuration of the cooking screen
type Config struct {
	Layout  LayoutConfig  `toml:"layout"`
	Header  HeaderConfig  `toml:"header"`
	Palette PaletteConfig `toml:"palette"`
	Serving ServingConfig `toml:"serving"`
	Log     LogConfig     `toml:"log"`
}

// LayoutConfig sizes the collapsing header
type LayoutConfig struct {
	ExpandedHeight  float32 `toml:"expanded_height"`
	CollapsedHeight float32 `toml:"collapsed_height"`
	TopInset        float32 `toml:"top_inset"` // negative: ask the device
}

// HeaderConfig tunes the collapse animation
type HeaderConfig struct {
	BaseInset      float32 `toml:"base_inset"`
	ExtraInset     float32 `toml:"extra_inset"`
	ScaleReduction float32 `toml:"scale_reduction"`
	Elevation      float32 `toml:"elevation"`
	GradientStart  float32 `toml:"gradient_start"`
	ControlsInset  float32 `toml:"controls_inset"`
}

// PaletteConfig is the fixed color palette of the screen
type PaletteConfig struct {
	Pink       Color `toml:"pink"`
	LightGray  Color `toml:"light_gray"`
	DarkGray   Color `toml:"dark_gray"`
	Background Color `toml:"background"`
	Foreground Color `toml:"foreground"`
}

// ServingConfig holds the serving counter start value
type ServingConfig struct {
	Initial int `toml:"initial"`
}

// LogConfig selects the log level: debug, info, warn or error
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the embedded defaults
func Default() Config {
	cfg, err := Parse(defaultsTOML, Config{})
	if err != nil {
		panic(fmt.Sprintf("embedded defaults.toml: %v", err))
	}
	return cfg
}

// Parse decodes data on top of base. Keys missing from data keep the value
// they have in base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a user config file over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err = Parse(data, cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by COOKING_CONFIG, if any
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

// Validate checks the values the layout math depends on
func (c Config) Validate() error {
	if c.Layout.ExpandedHeight <= 0 {
		return fmt.Errorf("%w: layout.expanded_height must be positive, got %v", ErrInvalidConfig, c.Layout.ExpandedHeight)
	}
	if c.Layout.CollapsedHeight <= 0 {
		return fmt.Errorf("%w: layout.collapsed_height must be positive, got %v", ErrInvalidConfig, c.Layout.CollapsedHeight)
	}
	if c.Header.GradientStart < 0 || c.Header.GradientStart > 1 {
		return fmt.Errorf("%w: header.gradient_start must be within [0,1], got %v", ErrInvalidConfig, c.Header.GradientStart)
	}
	if c.Header.ScaleReduction < 0 || c.Header.ScaleReduction >= 1 {
		return fmt.Errorf("%w: header.scale_reduction must be within [0,1), got %v", ErrInvalidConfig, c.Header.ScaleReduction)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// HasFixedTopInset reports whether the config pins the status bar inset
func (c Config) HasFixedTopInset() bool {
	return c.Layout.TopInset >= 0
}

// Metrics returns the parallax metrics for the given device inset. A pinned
// inset in the config wins over the device value.
func (c Config) Metrics(deviceInset float32) parallax.Metrics {
	inset := deviceInset
	if c.HasFixedTopInset() {
		inset = c.Layout.TopInset
	}
	return parallax.Metrics{
		ExpandedHeight:  c.Layout.ExpandedHeight,
		CollapsedHeight: c.Layout.CollapsedHeight,
		TopInset:        inset,
	}
}

// HeaderStyle returns the parallax header style
func (c Config) HeaderStyle() parallax.HeaderStyle {
	return parallax.HeaderStyle{
		BaseInset:      c.Header.BaseInset,
		ExtraInset:     c.Header.ExtraInset,
		ScaleReduction: c.Header.ScaleReduction,
		Elevation:      c.Header.Elevation,
		GradientStart:  c.Header.GradientStart,
		ControlsInset:  c.Header.ControlsInset,
	}
}

// LogLevel returns the configured slog level
func (c Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
