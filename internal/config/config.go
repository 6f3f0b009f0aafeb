// Package config resolves emp settings from defaults, emp.yaml, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is read from the working directory when --config is not given.
	DefaultConfigFile = "emp.yaml"

	// Default configuration values
	DefaultFile     = "employees.xlsx"
	DefaultSheet    = "Sheet1"
	DefaultLogLevel = "warn"
	DefaultLogMaxMB = 10
	DefaultLogFiles = 5
)

// Environment variables that override emp.yaml.
const (
	EnvFile     = "EMP_FILE"
	EnvSheet    = "EMP_SHEET"
	EnvLogLevel = "EMP_LOG_LEVEL"
	EnvLogFile  = "EMP_LOG_FILE"
)

// Config represents user configuration from emp.yaml.
// This file is user-managed and never written by emp.
type Config struct {
	// File is the path of the employee spreadsheet.
	File string `yaml:"file"`

	// Sheet is the worksheet name used when writing. Reading always uses the first sheet.
	Sheet string `yaml:"sheet"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level     string `yaml:"level"`
	File      string `yaml:"file"` // empty logs to stderr
	MaxSizeMB int    `yaml:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		File:  DefaultFile,
		Sheet: DefaultSheet,
		Log: LogConfig{
			Level:     DefaultLogLevel,
			MaxSizeMB: DefaultLogMaxMB,
			MaxFiles:  DefaultLogFiles,
		},
	}
}

// Overrides holds values set on the command line. Empty fields are ignored.
type Overrides struct {
	File     string
	LogLevel string
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigPath is an explicit config file. It must exist if set.
	ConfigPath string
	// DotEnv lists .env files to load into the process environment.
	// Missing files are ignored.
	DotEnv []string
	// Getenv reads environment variables. Defaults to os.Getenv.
	Getenv    func(string) string
	Overrides Overrides
}

// Load builds the effective configuration.
// Partial config files are merged with defaults.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.ConfigPath
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file - keep defaults
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, f := range opts.DotEnv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	setIf(&cfg.File, getenv(EnvFile))
	setIf(&cfg.Sheet, getenv(EnvSheet))
	setIf(&cfg.Log.Level, getenv(EnvLogLevel))
	setIf(&cfg.Log.File, getenv(EnvLogFile))

	setIf(&cfg.File, opts.Overrides.File)
	setIf(&cfg.Log.Level, opts.Overrides.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setIf(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("invalid config: file must not be empty")
	}
	if strings.TrimSpace(c.Sheet) == "" {
		c.Sheet = DefaultSheet
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid config: log level %q (expected debug, info, warn or error)", c.Log.Level)
	}
	return nil
}
