package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeFile(t, "simwire.toml", `
templates = "messages.msg"
lenient = true
strict_strings = true
protocol_log = "/var/log/simwire.slog"
protocol_log_max_mb = 16
log_level = "debug"
metrics_addr = "127.0.0.1:9100"
`)

	cfg := DefaultConfig()
	require.NoError(t, LoadConfigFile(path, &cfg))

	assert.Equal(t, filepath.Join(filepath.Dir(path), "messages.msg"), cfg.Templates)
	assert.True(t, cfg.Lenient)
	assert.True(t, cfg.StrictStrings)
	assert.Equal(t, "/var/log/simwire.slog", cfg.ProtocolLog)
	assert.Equal(t, 16, cfg.ProtocolLogMaxMB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9100", cfg.MetricsAddr)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeFile(t, "simwire.yaml", "lenient: true\nlog_level: warn\n")

	cfg := DefaultConfig()
	require.NoError(t, LoadConfigFile(path, &cfg))

	assert.True(t, cfg.Lenient)
	assert.False(t, cfg.StrictStrings)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.Templates)
}

func TestLoadConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown yaml key", "bad.yaml", "lenient: true\nbogus: 1\n"},
		{"invalid toml", "bad.toml", "lenient = \n"},
		{"wrong type", "bad.toml", "lenient = \"yes\"\n"},
		{"unsupported extension", "simwire.ini", "lenient=true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			assert.Error(t, LoadConfigFile(writeFile(t, tt.file, tt.content), &cfg))
		})
	}

	cfg := DefaultConfig()
	assert.Error(t, LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"), &cfg))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"rotating log", Config{LogLevel: "error", ProtocolLog: "x.slog", ProtocolLogMaxMB: 1}, false},
		{"bad level", Config{LogLevel: "loud"}, true},
		{"negative size", Config{LogLevel: "info", ProtocolLog: "x.slog", ProtocolLogMaxMB: -1}, true},
		{"size without log", Config{LogLevel: "info", ProtocolLogMaxMB: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "simwire.toml", "lenient = true\nlog_level = \"debug\"\nstrict_strings = true\n")

	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	bindFlags(fs, &cfg)
	fs.BoolVar(&cfg.Lenient, "lenient", cfg.Lenient, "")

	err := parseConfig(fs, &cfg, []string{"-config", path, "-log-level", "warn", "-lenient=false", "ff"})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel, "flag should win over file")
	assert.False(t, cfg.Lenient, "flag should win over file")
	assert.True(t, cfg.StrictStrings, "file value should survive")
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, []string{"ff"}, fs.Args())
}

func TestParseConfigWithoutFile(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	bindFlags(fs, &cfg)

	require.NoError(t, parseConfig(fs, &cfg, []string{"-strict-strings"}))
	assert.True(t, cfg.StrictStrings)
	assert.Equal(t, "info", cfg.LogLevel)

	cfg = DefaultConfig()
	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	bindFlags(fs, &cfg)
	assert.Error(t, parseConfig(fs, &cfg, []string{"-log-level", "verbose"}))
}
