package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thenoetrevino/tablero/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Defaults for values missing from the config file
const (
	DefaultLatency      = "300ms"
	DefaultOrphanPolicy = "allow"
	DefaultLogLevel     = "info"
)

// Environment overrides
const (
	EnvSeedFile  = "TABLERO_SEED_FILE"
	EnvThemeFile = "TABLERO_THEME_FILE"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	// Simulated store round-trip, as a Go duration string ("300ms", "0s")
	Latency string `yaml:"latency"`

	// Boards to start with instead of the built-in seed (.json, .yaml, .yml)
	SeedFile string `yaml:"seed_file,omitempty"`

	// What creating an item for an unknown group does: "allow" or "reject"
	OrphanPolicy string `yaml:"orphan_policy"`

	LogLevel string `yaml:"log_level"`

	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TABLERO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return finish(&Config{})
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return finish(&Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return finish(&config)
}

// finish applies environment overrides and defaults, then validates
func finish(config *Config) (*Config, error) {
	loadThemeFile(config)

	if seedFile := os.Getenv(EnvSeedFile); seedFile != "" {
		config.SeedFile = seedFile
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to path, creating parent directories
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tablero", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tablero", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Latency == "" {
		c.Latency = DefaultLatency
	}
	if c.OrphanPolicy == "" {
		c.OrphanPolicy = DefaultOrphanPolicy
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// Validate checks the values that are parsed later
func (c *Config) Validate() error {
	if _, err := c.LatencyDuration(); err != nil {
		return err
	}

	switch c.OrphanPolicy {
	case "allow", "reject":
	default:
		return fmt.Errorf("%w: orphan_policy %q must be allow or reject", ErrInvalidConfig, c.OrphanPolicy)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LatencyDuration parses Latency. Negative durations are rejected.
func (c *Config) LatencyDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Latency)
	if err != nil {
		return 0, fmt.Errorf("%w: latency %q: %v", ErrInvalidConfig, c.Latency, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: latency %q must not be negative", ErrInvalidConfig, c.Latency)
	}
	return d, nil
}

// SlogLevel returns the configured log level, falling back to info
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel maps debug, info, warn and error to slog levels
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q must be debug, info, warn or error", ErrInvalidConfig, s)
	}
}
