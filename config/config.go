// Package config loads the deboxer run configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default file names used by the original extraction tool.
const (
	DefaultTape     = "tape71"
	DefaultRequests = "fetchCov.dat"
	DefaultOutput   = "newCov.dat"
)

// Environment variables that override the file.
const (
	EnvTape     = "DEBOXER_TAPE"
	EnvRequests = "DEBOXER_REQUESTS"
	EnvOutput   = "DEBOXER_OUTPUT"
	EnvSQLite   = "DEBOXER_SQLITE"
	EnvLogLevel = "DEBOXER_LOG_LEVEL"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds one extraction run's settings.
type Config struct {
	// Input tape in BOXER format.
	Tape string `yaml:"tape"`

	// Request list, one reaction per line.
	Requests string `yaml:"requests"`

	// Text dataset written by the run.
	Output string `yaml:"output"`

	// Optional SQLite export; empty disables it.
	SQLite string `yaml:"sqlite,omitempty"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted log encoders.
var ValidFormats = []string{"json", "console"}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Tape:     DefaultTape,
		Requests: DefaultRequests,
		Output:   DefaultOutput,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvTape); v != "" {
		c.Tape = v
	}
	if v := os.Getenv(EnvRequests); v != "" {
		c.Requests = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvSQLite); v != "" {
		c.SQLite = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// Validate checks that every required path is set and the log settings are known.
func (c *Config) Validate() error {
	for name, v := range map[string]string{"tape": c.Tape, "requests": c.Requests, "output": c.Output} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s path is empty: %w", name, ErrInvalidConfig)
		}
	}
	if !contains(ValidLevels, c.Log.Level) {
		return fmt.Errorf("log level %q (valid: %v): %w", c.Log.Level, ValidLevels, ErrInvalidConfig)
	}
	if !contains(ValidFormats, c.Log.Format) {
		return fmt.Errorf("log format %q (valid: %v): %w", c.Log.Format, ValidFormats, ErrInvalidConfig)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
