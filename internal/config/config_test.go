package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ednfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "mode: keywords\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeKeywords, cfg.Mode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "\n", cfg.Separator, "unset fields keep their defaults")
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.NoError(t, cfg.Validate())
}

func TestLoadSeparator(t *testing.T) {
	cfg, err := Load(writeConfig(t, "separator: \"\\n\\n\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "\n\n", cfg.Separator)
	assert.Equal(t, ModeFormat, cfg.Mode)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, err = Load(writeConfig(t, "mode: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"keywords mode", func(c *Config) { c.Mode = ModeKeywords }, ""},
		{"unknown mode", func(c *Config) { c.Mode = "pretty" }, "unknown mode"},
		{"empty mode", func(c *Config) { c.Mode = "" }, "unknown mode"},
		{"unknown level", func(c *Config) { c.LogLevel = "trace" }, "unknown log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSlogLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
