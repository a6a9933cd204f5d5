package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tablero/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	// Create a temporary theme file
	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "tablero-theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themePath)

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify theme was merged
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Edit != "#0000FF" {
		t.Errorf("Expected edit to be #0000FF, got %s", cfg.ColorScheme.Edit)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	isolate(t)
	t.Setenv(EnvThemeFile, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ColorScheme.Accent != colors.Default().Accent {
		t.Errorf("Expected default accent, got %s", cfg.ColorScheme.Accent)
	}
}

func TestPresetFillsCustomScheme(t *testing.T) {
	scheme := colors.ColorScheme{Preset: "wave", Accent: "#123456"}
	scheme.ApplyDefaults()

	wave := colors.Wave()
	if scheme.Accent != "#123456" {
		t.Errorf("Custom accent overwritten, got %s", scheme.Accent)
	}
	if scheme.Normal != wave.Normal {
		t.Errorf("Expected wave normal %s, got %s", wave.Normal, scheme.Normal)
	}

	for _, name := range colors.Presets {
		if got := colors.GetPreset(name).Preset; got != name {
			t.Errorf("GetPreset(%q).Preset = %q", name, got)
		}
	}
}
