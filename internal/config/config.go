package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/textfinder/internal/logger"
	"github.com/harrison/textfinder/internal/search"
	"github.com/harrison/textfinder/internal/textfind"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPatterns are the extensions searched unless disabled.
var DefaultPatterns = []string{"rs", "txt"}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents textfinder configuration options
type Config struct {
	// Regex is the regular expression searched for in file content
	Regex string `yaml:"regex" toml:"regex"`

	// Patterns are extra file extensions to search, without the leading dot
	Patterns []string `yaml:"patterns" toml:"patterns"`

	// DefaultPatterns adds DefaultPatterns to Patterns
	DefaultPatterns bool `yaml:"default_patterns" toml:"default_patterns"`

	// Recurse enables searching subdirectories
	Recurse bool `yaml:"recurse" toml:"recurse"`

	// HideEmptyDirs only shows directories that contain matching files
	HideEmptyDirs bool `yaml:"hide_empty_dirs" toml:"hide_empty_dirs"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level" toml:"log_level"`

	// FallbackEncoding decodes files that are not valid UTF-8 (IANA name)
	FallbackEncoding string `yaml:"fallback_encoding" toml:"fallback_encoding"`

	// Color controls colored output: auto, always or never
	Color string `yaml:"color" toml:"color"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Regex:            ".",
		Patterns:         []string{},
		DefaultPatterns:  true,
		Recurse:          true,
		HideEmptyDirs:    true,
		LogLevel:         logger.DefaultLevel,
		FallbackEncoding: "utf-8",
		Color:            ColorAuto,
	}
}

// fileConfig mirrors Config with pointer fields so that keys present in a
// file can be told apart from zero values.
type fileConfig struct {
	Regex            *string  `yaml:"regex" toml:"regex"`
	Patterns         []string `yaml:"patterns" toml:"patterns"`
	DefaultPatterns  *bool    `yaml:"default_patterns" toml:"default_patterns"`
	Recurse          *bool    `yaml:"recurse" toml:"recurse"`
	HideEmptyDirs    *bool    `yaml:"hide_empty_dirs" toml:"hide_empty_dirs"`
	LogLevel         *string  `yaml:"log_level" toml:"log_level"`
	FallbackEncoding *string  `yaml:"fallback_encoding" toml:"fallback_encoding"`
	Color            *string  `yaml:"color" toml:"color"`
}

// LoadConfig loads configuration from the specified file path.
// Files ending in .toml are parsed as TOML, everything else as YAML.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.apply(fc)
	return cfg, nil
}

// apply copies the values present in fc over c.
func (c *Config) apply(fc fileConfig) {
	if fc.Regex != nil {
		c.Regex = *fc.Regex
	}
	if fc.Patterns != nil {
		c.Patterns = fc.Patterns
	}
	if fc.DefaultPatterns != nil {
		c.DefaultPatterns = *fc.DefaultPatterns
	}
	if fc.Recurse != nil {
		c.Recurse = *fc.Recurse
	}
	if fc.HideEmptyDirs != nil {
		c.HideEmptyDirs = *fc.HideEmptyDirs
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.FallbackEncoding != nil {
		c.FallbackEncoding = *fc.FallbackEncoding
	}
	if fc.Color != nil {
		c.Color = *fc.Color
	}
}

// Overrides holds values given on the command line. Nil fields were not set.
type Overrides struct {
	Regex            *string
	Patterns         []string
	NoDefaults       *bool
	Recurse          *bool
	HideEmptyDirs    *bool
	LogLevel         *string
	FallbackEncoding *string
	Color            *string
}

// MergeWithFlags merges CLI flags into the configuration.
// Flag patterns are added to the configured ones; other set flags replace
// the configured value.
func (c *Config) MergeWithFlags(o Overrides) {
	if o.Regex != nil {
		c.Regex = *o.Regex
	}
	if len(o.Patterns) > 0 {
		c.Patterns = append(c.Patterns, o.Patterns...)
	}
	if o.NoDefaults != nil {
		c.DefaultPatterns = !*o.NoDefaults
	}
	if o.Recurse != nil {
		c.Recurse = *o.Recurse
	}
	if o.HideEmptyDirs != nil {
		c.HideEmptyDirs = *o.HideEmptyDirs
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.FallbackEncoding != nil {
		c.FallbackEncoding = *o.FallbackEncoding
	}
	if o.Color != nil {
		c.Color = *o.Color
	}
}

// Extensions returns the effective extension set: the default patterns (when
// enabled) followed by the configured ones, without leading dots or duplicates.
func (c *Config) Extensions() []string {
	var all []string
	if c.DefaultPatterns {
		all = append(all, DefaultPatterns...)
	}
	all = append(all, c.Patterns...)

	seen := make(map[string]bool, len(all))
	out := make([]string, 0, len(all))
	for _, p := range all {
		p = strings.TrimPrefix(strings.TrimSpace(p), ".")
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	exts := c.Extensions()
	if len(exts) == 0 {
		return fmt.Errorf("no file patterns configured: add patterns or enable default_patterns")
	}
	for _, ext := range exts {
		if strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("invalid pattern %q: must be a file extension, not a path", ext)
		}
	}

	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if _, err := textfind.NewDecoder(c.FallbackEncoding); err != nil {
		return fmt.Errorf("invalid fallback_encoding: %w", err)
	}

	return nil
}

// SearchConfig returns the immutable search configuration.
func (c *Config) SearchConfig() search.Config {
	return search.Config{
		Pattern:          c.Regex,
		Extensions:       c.Extensions(),
		Recurse:          c.Recurse,
		HideEmptyDirs:    c.HideEmptyDirs,
		FallbackEncoding: c.FallbackEncoding,
	}
}
