// Package config loads ednfmt's configuration file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ModeFormat   = "format"
	ModeKeywords = "keywords"
)

// Config holds ednfmt's settings. Flags given on the command line override the
// file's values.
type Config struct {
	// Separator is written after each printed form.
	Separator string `yaml:"separator"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Mode is either "format", to print every form back, or "keywords", to list
	// the distinct keywords in the input.
	Mode string `yaml:"mode"`
}

func Default() Config {
	return Config{
		Separator: "\n",
		LogLevel:  "info",
		Mode:      ModeFormat,
	}
}

// Load reads a YAML configuration file. Settings missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeFormat, ModeKeywords:
	default:
		return fmt.Errorf("unknown mode %q (want %q or %q)", c.Mode, ModeFormat, ModeKeywords)
	}
	if _, ok := levels[c.LogLevel]; !ok {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// SlogLevel returns the configured log level, or info if it's unknown.
func (c Config) SlogLevel() slog.Level {
	if l, ok := levels[c.LogLevel]; ok {
		return l
	}
	return slog.LevelInfo
}
