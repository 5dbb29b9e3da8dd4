// Package config loads the optional gensrc settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultBugReportURL is where unexpected failures are reported.
const DefaultBugReportURL = "https://github.com/kevr/gensrc"

// Config is the top-level structure of config.yaml.
type Config struct {
	// TemplatesDir holds user templates that override or extend the bundled
	// ones. Supports a leading "~".
	TemplatesDir string        `yaml:"templates_dir"`
	// Logging contains logging configuration.
	Logging      LoggingConfig `yaml:"logging"`
	// BugReportURL is printed alongside unexpected errors.
	BugReportURL string        `yaml:"bug_report_url"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path  string `yaml:"path"`
}

// validLevels is the set of accepted logging.level values.
var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Error reports a settings file that could not be read, parsed or validated.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserFacing marks the error as an expected, reportable condition.
func (e *Error) UserFacing() {}

// DefaultPath returns $XDG_CONFIG_HOME/gensrc/config.yaml (or the platform
// equivalent), or "" if no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gensrc", "config.yaml")
}

// Load reads, defaults and validates the settings file at path. When
// required is false a missing file yields the defaults.
//
// Parameters:
//   - path: The settings file location.
//   - required: Whether a missing file is an error.
//
// Returns:
//   - *Config: The effective configuration.
//   - error: A *Error if the file is unreadable or invalid.
func Load(path string, required bool) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !required:
		case err != nil:
			return nil, &Error{Path: path, Err: err}
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, &Error{Path: path, Err: err}
			}
		}
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return cfg, nil
}

// ApplyDefaults fills in missing values and expands "~" in paths.
func ApplyDefaults(config *Config) {
	if config.Logging.Level == "" {
		config.Logging.Level = "warn"
	}
	config.Logging.Level = strings.ToLower(config.Logging.Level)
	if config.BugReportURL == "" {
		config.BugReportURL = DefaultBugReportURL
	}
	config.TemplatesDir = expandPath(config.TemplatesDir)
	config.Logging.Path = expandPath(config.Logging.Path)
}

// Validate checks the configuration for unknown log levels and a missing
// templates directory.
func Validate(config *Config) error {
	if !validLevels[config.Logging.Level] {
		return fmt.Errorf("logging.level '%s' is not supported (allowed: %s)", config.Logging.Level, allowedList(validLevels))
	}

	if config.TemplatesDir != "" {
		info, err := os.Stat(config.TemplatesDir)
		if err != nil {
			return fmt.Errorf("templates_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("templates_dir %s is not a directory", config.TemplatesDir)
		}
	}
	return nil
}

func allowedList(m map[string]bool) string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
