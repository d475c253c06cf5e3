// Package config loads the optional YAML run configuration for the
// invoice2pdf CLI. CLI flags always override config values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-invoice2pdf/internal/fileutil"
	"github.com/alnah/go-invoice2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxPathLength = 4096 // Directory and file paths
	MaxDateLength = 30   // "2025-12-31" or "auto"
	MaxTextLength = 500  // Footer free-form text
)

// Default locations matching the original invoice workflow: records in
// invoices/, artifacts in output/, debug markdown beside them.
const (
	DefaultInvoicesDir = "invoices"
	DefaultOutputDir   = "output"
	DefaultStylePath   = "includes/style.css"
	DefaultDebugPath   = "debug_invoice.md"
)

// Config holds all configuration for a batch run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Style  StyleConfig  `yaml:"style"`
	Footer FooterConfig `yaml:"footer"`
	Debug  DebugConfig  `yaml:"debug"`
}

// InputConfig defines where invoice records are read from.
type InputConfig struct {
	Dir string `yaml:"dir"` // Directory of YAML records (default: invoices)
}

// OutputConfig defines where artifacts are written.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Artifact directory (default: output)
}

// StyleConfig defines the external stylesheet.
type StyleConfig struct {
	Path string `yaml:"path"` // CSS file; unreadable or missing = embedded fallback
}

// FooterConfig defines the optional PDF footer.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "right")
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Date           string `yaml:"date"` // "auto" = generation date, or literal text
	Text           string `yaml:"text"` // Optional free-form text
}

// DebugConfig defines the intermediate markdown side-channel.
type DebugConfig struct {
	Path string `yaml:"path"` // Fixed debug path, always overwritten (default: debug_invoice.md)
}

// Validate checks field lengths and enum values.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.dir", c.Input.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.path", c.Style.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("debug.path", c.Debug.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("footer.date", c.Footer.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("footer.text", c.Footer.Text, MaxTextLength); err != nil {
		return err
	}
	if c.Footer.Position != "" {
		switch strings.ToLower(c.Footer.Position) {
		case "left", "center", "right":
			// valid
		default:
			return fmt.Errorf("footer.position: invalid value %q (must be left, center, or right)", c.Footer.Position)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the standard batch-run configuration.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Dir: DefaultInvoicesDir},
		Output: OutputConfig{Dir: DefaultOutputDir},
		Style:  StyleConfig{Path: DefaultStylePath},
		Footer: FooterConfig{Enabled: false},
		Debug:  DebugConfig{Path: DefaultDebugPath},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent
// fallback: an explicitly requested config must exist).
//
// Fields absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-invoice2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-invoice2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
