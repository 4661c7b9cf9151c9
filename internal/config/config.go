// Package config loads the shared YAML configuration for the bingo and
// covers CLIs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/eoertel/go-printables/internal/dateutil"
	"github.com/eoertel/go-printables/internal/fileutil"
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
	MaxJokerLength  = 100 // Center field text
	MaxPathLength   = 4096
	MaxSizeLength   = 20 // "30:48:2"
	MaxFormatLength = dateutil.MaxFormatLength
)

// configDirName is the subdirectory searched under the user config dir.
const configDirName = "go-printables"

// Config holds configuration for both generators.
type Config struct {
	Bingo  BingoConfig  `yaml:"bingo"`
	Covers CoversConfig `yaml:"covers"`
	Output OutputConfig `yaml:"output"`
}

// BingoConfig defines defaults for the bingo card generator.
type BingoConfig struct {
	Size  int    `yaml:"size"`  // Square dimension (default 5)
	Joker string `yaml:"joker"` // Center field text for odd sizes
	File  string `yaml:"file"`  // Default entries file (empty = must specify)
}

// CoversConfig defines defaults for the cover sheet generator.
type CoversConfig struct {
	Path      string   `yaml:"path"`      // Image and output directory
	Sizes     []string `yaml:"sizes"`     // "x:y[:copies]" specs
	Quiet     bool     `yaml:"quiet"`     // Less verbose output
	AnswerYes bool     `yaml:"answerYes"` // Suppress interactive prompts
}

// OutputConfig defines output naming options.
type OutputConfig struct {
	TimestampFormat string `yaml:"timestampFormat"` // dateutil token syntax
}

// Validate checks field lengths and that the timestamp format compiles.
// Called automatically by Load, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("bingo.joker", c.Bingo.Joker, MaxJokerLength); err != nil {
		return err
	}
	if err := validateFieldLength("bingo.file", c.Bingo.File, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("covers.path", c.Covers.Path, MaxPathLength); err != nil {
		return err
	}
	for i, s := range c.Covers.Sizes {
		if err := validateFieldLength(fmt.Sprintf("covers.sizes[%d]", i), s, MaxSizeLength); err != nil {
			return err
		}
	}
	if c.Output.TimestampFormat != "" {
		if _, err := dateutil.ParseFormat(c.Output.TimestampFormat); err != nil {
			return fmt.Errorf("output.timestampFormat: %w", err)
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

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Bingo: BingoConfig{
			Size:  5,
			Joker: "JOKER",
		},
		Covers: CoversConfig{
			Path:  ".",
			Sizes: nil, // The default "30:48" is seeded by the size parser
		},
		Output: OutputConfig{
			TimestampFormat: dateutil.DefaultTimestampFormat,
		},
	}
}

// Load loads configuration from a file path or config name. If
// nameOrPath contains a path separator it is treated as a file path;
// otherwise it is treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback). Unknown fields are rejected.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
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

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <UserConfigDir>/go-printables/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
