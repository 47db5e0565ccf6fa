// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
	"github.com/idilsaglam/tasklist/internal/ui"
)

// Default values.
const (
	DefaultColor     = string(ui.ColorAuto)
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for tasklist.
type Config struct {
	// DataFile is the JSON task list, relative to the working directory
	// unless absolute.
	DataFile string `toml:"data_file"`

	// Color is one of auto, always, never.
	Color string `toml:"color"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Sources lists the config files that were applied, in order.
	Sources []string `toml:"-"`
}

// Load reads configuration in priority order:
// 1. Defaults
// 2. User config file (<user config dir>/tasklist/config.toml)
// 3. Project config file (tasklist.toml or .tasklist.toml in current directory)
// 4. Environment variables
func Load() (*Config, error) {
	return load(findUserConfigFile(), findProjectConfigFile("."))
}

func load(userFile, projectFile string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	for _, path := range []string{userFile, projectFile} {
		if path == "" {
			continue
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.Sources = append(cfg.Sources, path)
	}

	loadFromEnv(cfg)

	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.DataFile = jsonstore.DefaultFileName
	cfg.Color = DefaultColor
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}

func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "tasklist", "config.toml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

func findProjectConfigFile(dir string) string {
	for _, name := range []string{"tasklist.toml", ".tasklist.toml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKLIST_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TASKLIST_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("TASKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = string(ui.ColorNever)
	}
}

func finalizeConfig(cfg *Config) error {
	cfg.DataFile = expandPath(strings.TrimSpace(cfg.DataFile))
	if cfg.DataFile == "" {
		return fmt.Errorf("data_file is empty")
	}
	mode, err := ui.ParseColorMode(cfg.Color)
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}
	cfg.Color = string(mode)

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", cfg.LogLevel)
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format: unknown format %q", cfg.LogFormat)
	}
	return nil
}

// ColorMode returns the validated colour setting.
func (c *Config) ColorMode() ui.ColorMode { return ui.ColorMode(c.Color) }

// expandPath expands a leading ~/ to the home directory.
func expandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
