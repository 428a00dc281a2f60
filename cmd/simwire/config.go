package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by all subcommands.
type Config struct {
	ConfigFile string

	// Templates is a catalogue file; empty selects the embedded catalogue.
	Templates string

	Lenient       bool
	StrictStrings bool

	// ProtocolLog is a CBOR event log path. ProtocolLogMaxMB > 0 rotates it.
	ProtocolLog      string
	ProtocolLogMaxMB int

	LogLevel    string
	MetricsAddr string
	Circuit     string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{LogLevel: "info"}
}

// fileConfig is the on-disk form. Pointer fields distinguish unset keys.
type fileConfig struct {
	Templates        *string `toml:"templates" yaml:"templates"`
	Lenient          *bool   `toml:"lenient" yaml:"lenient"`
	StrictStrings    *bool   `toml:"strict_strings" yaml:"strict_strings"`
	ProtocolLog      *string `toml:"protocol_log" yaml:"protocol_log"`
	ProtocolLogMaxMB *int    `toml:"protocol_log_max_mb" yaml:"protocol_log_max_mb"`
	LogLevel         *string `toml:"log_level" yaml:"log_level"`
	MetricsAddr      *string `toml:"metrics_addr" yaml:"metrics_addr"`
}

// LoadConfigFile overlays the settings in path onto cfg. The format is
// chosen by extension: .toml, or .yaml/.yml.
func LoadConfigFile(path string, cfg *Config) error {
	var raw fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && err != io.EOF {
			return fmt.Errorf("load config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("load config %s: unsupported format (want .toml or .yaml)", path)
	}

	if raw.Templates != nil {
		cfg.Templates = resolveRelative(path, strings.TrimSpace(*raw.Templates))
	}
	if raw.Lenient != nil {
		cfg.Lenient = *raw.Lenient
	}
	if raw.StrictStrings != nil {
		cfg.StrictStrings = *raw.StrictStrings
	}
	if raw.ProtocolLog != nil {
		cfg.ProtocolLog = resolveRelative(path, strings.TrimSpace(*raw.ProtocolLog))
	}
	if raw.ProtocolLogMaxMB != nil {
		cfg.ProtocolLogMaxMB = *raw.ProtocolLogMaxMB
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = strings.TrimSpace(*raw.LogLevel)
	}
	if raw.MetricsAddr != nil {
		cfg.MetricsAddr = strings.TrimSpace(*raw.MetricsAddr)
	}
	return nil
}

// resolveRelative interprets p relative to the directory of the config file.
func resolveRelative(configPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}

// Validate checks the combined settings.
func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.ProtocolLogMaxMB < 0 {
		return fmt.Errorf("protocol_log_max_mb must be >= 0, got %d", c.ProtocolLogMaxMB)
	}
	if c.ProtocolLogMaxMB > 0 && c.ProtocolLog == "" {
		return fmt.Errorf("protocol_log_max_mb requires protocol_log")
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", s)
	}
	return level, nil
}

// bindFlags registers the shared flags on fs, writing into cfg.
func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConfigFile, "config", "", "Configuration file (.toml or .yaml)")
	fs.StringVar(&cfg.Templates, "templates", cfg.Templates, "Template catalogue file (default: embedded catalogue)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.ProtocolLog, "protocol-log", cfg.ProtocolLog, "File path for protocol event logging (CBOR format)")
	fs.IntVar(&cfg.ProtocolLogMaxMB, "protocol-log-max-mb", cfg.ProtocolLogMaxMB, "Rotate the protocol log at this size in MB (0 disables rotation)")
	fs.BoolVar(&cfg.StrictStrings, "strict-strings", cfg.StrictStrings, "Reject text fields without a zero terminator")
	fs.StringVar(&cfg.Circuit, "circuit", cfg.Circuit, "Circuit ID recorded in protocol log events")
}

// parseConfig parses args into cfg. Values from -config are applied first;
// flags given on the command line override them.
func parseConfig(fs *flag.FlagSet, cfg *Config, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.ConfigFile != "" {
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

		base := DefaultConfig()
		if err := LoadConfigFile(cfg.ConfigFile, &base); err != nil {
			return err
		}
		*cfg = overlayFlags(base, *cfg, set)
	}
	return cfg.Validate()
}

// overlayFlags returns base with the explicitly set flag values of flags.
func overlayFlags(base, flags Config, set map[string]bool) Config {
	out := base
	out.ConfigFile = flags.ConfigFile
	out.Circuit = flags.Circuit
	if set["templates"] {
		out.Templates = flags.Templates
	}
	if set["lenient"] {
		out.Lenient = flags.Lenient
	}
	if set["strict-strings"] {
		out.StrictStrings = flags.StrictStrings
	}
	if set["protocol-log"] {
		out.ProtocolLog = flags.ProtocolLog
	}
	if set["protocol-log-max-mb"] {
		out.ProtocolLogMaxMB = flags.ProtocolLogMaxMB
	}
	if set["log-level"] {
		out.LogLevel = flags.LogLevel
	}
	if set["metrics-addr"] {
		out.MetricsAddr = flags.MetricsAddr
	}
	return out
}
