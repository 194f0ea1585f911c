package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/cooking/internal/parallax"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Layout.ExpandedHeight != parallax.DefaultExpandedHeight {
		t.Errorf("Expected expanded height %v, got %v", parallax.DefaultExpandedHeight, cfg.Layout.ExpandedHeight)
	}
	if cfg.Layout.CollapsedHeight != parallax.DefaultCollapsedHeight {
		t.Errorf("Expected collapsed height %v, got %v", parallax.DefaultCollapsedHeight, cfg.Layout.CollapsedHeight)
	}
	if cfg.HasFixedTopInset() {
		t.Error("Default config should take the top inset from the device")
	}
	if cfg.Serving.Initial != 6 {
		t.Errorf("Expected initial servings 6, got %d", cfg.Serving.Initial)
	}
	if cfg.HeaderStyle() != parallax.DefaultHeaderStyle() {
		t.Errorf("Default header style mismatch: %+v", cfg.HeaderStyle())
	}
}

func TestMetrics(t *testing.T) {
	cfg := Default()

	m := cfg.Metrics(24)
	if m.TopInset != 24 {
		t.Errorf("Expected device inset 24, got %v", m.TopInset)
	}

	cfg.Layout.TopInset = 0
	m = cfg.Metrics(24)
	if m.TopInset != 0 {
		t.Errorf("Pinned inset should win, got %v", m.TopInset)
	}
	if m.MaxOffset() != 344 {
		t.Errorf("Expected max offset 344, got %v", m.MaxOffset())
	}
}

func TestParseOverlay(t *testing.T) {
	data := []byte(`
[layout]
expanded_height = 320.0

[palette]
pink = "#ff0080"
`)

	cfg, err := Parse(data, Default())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Layout.ExpandedHeight != 320 {
		t.Errorf("Expected overridden height 320, got %v", cfg.Layout.ExpandedHeight)
	}
	if cfg.Layout.CollapsedHeight != 56 {
		t.Errorf("Missing keys should keep defaults, got collapsed height %v", cfg.Layout.CollapsedHeight)
	}
	if cfg.Palette.Pink.String() != "#ff0080" {
		t.Errorf("Expected pink #ff0080, got %s", cfg.Palette.Pink)
	}
	if cfg.Palette.LightGray.String() != "#f1f1f1" {
		t.Errorf("Expected default light gray, got %s", cfg.Palette.LightGray)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		sentinel bool
	}{
		{"bad color", "[palette]\npink = \"#zzzzzz\"", false},
		{"short color", "[palette]\npink = \"#fff\"", false},
		{"zero height", "[layout]\nexpanded_height = 0.0", true},
		{"gradient out of range", "[header]\ngradient_start = 1.5", true},
		{"unknown log level", "[log]\nlevel = \"verbose\"", true},
		{"not toml", "this is = = not toml", false},
	}

	for _, test := range tests {
		_, err := Parse([]byte(test.data), Default())
		if err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
			continue
		}
		if test.sentinel && !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", test.name, err)
		}
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Empty path should return defaults, got %v", err)
	}
	if cfg.Layout.ExpandedHeight != 400 {
		t.Errorf("Expected default height, got %v", cfg.Layout.ExpandedHeight)
	}

	path := filepath.Join(t.TempDir(), "cooking.toml")
	if err := os.WriteFile(path, []byte("[serving]\ninitial = 2\n[log]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Serving.Initial != 2 {
		t.Errorf("Expected initial servings 2, got %d", cfg.Serving.Initial)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", cfg.LogLevel())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	if err := os.WriteFile(path, []byte("[layout]\ntop_inset = 12.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !cfg.HasFixedTopInset() || cfg.Layout.TopInset != 12 {
		t.Errorf("Expected pinned inset 12, got %v", cfg.Layout.TopInset)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		alpha    uint8
	}{
		{"#cbe8e0", "#cbe8e0", 0xff},
		{"8cd694", "#8cd694", 0xff},
		{"#00000080", "#00000080", 0x80},
		{"  #FFFFFF ", "#ffffff", 0xff},
	}

	for _, test := range tests {
		c, err := ParseColor(test.input)
		if err != nil {
			t.Errorf("ParseColor(%q) unexpected error: %v", test.input, err)
			continue
		}
		if c.String() != test.expected || c.A != test.alpha {
			t.Errorf("ParseColor(%q) = %s (alpha %d), expected %s (alpha %d)", test.input, c, c.A, test.expected, test.alpha)
		}
	}
}
