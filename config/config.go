// Package config loads granular settings from defaults, a YAML file and
// GRANULAR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hannajonsd/granular-imports/parser"
	"github.com/hannajonsd/granular-imports/transform"
)

// Config is the top-level configuration. Field tags use mapstructure for
// viper unmarshalling and yaml for `config show`.
type Config struct {
	Transform TransformConfig `mapstructure:"transform" yaml:"transform"`
	Files     FilesConfig     `mapstructure:"files" yaml:"files"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// TransformConfig mirrors transform.Options. Extract holds "all" or a
// non-negative threshold.
type TransformConfig struct {
	Declaration string `mapstructure:"declaration" yaml:"declaration"`
	Extract     string `mapstructure:"extract" yaml:"extract"`
	Source      string `mapstructure:"source" yaml:"source"`
}

// FilesConfig selects which files a run visits.
type FilesConfig struct {
	Extensions       []string `mapstructure:"extensions" yaml:"extensions"`
	RespectGitignore bool     `mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default values applied before the config file and environment.
const (
	DefaultDeclaration      = transform.DefaultDeclaration
	DefaultExtract          = "all"
	DefaultSource           = transform.DefaultSource
	DefaultRespectGitignore = true
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// DefaultExtensions lists the file extensions visited when none are configured.
var DefaultExtensions = parser.SupportedExtensions

// Sentinel errors for configuration validation.
var (
	// ErrInvalidLogLevel indicates logging.level is not a known level.
	ErrInvalidLogLevel = errors.New("logging.level must be one of debug, info, warn, error")
	// ErrInvalidLogFormat indicates logging.format is neither text nor json.
	ErrInvalidLogFormat = errors.New("logging.format must be text or json")
	// ErrInvalidExtension indicates an extension without a leading dot.
	ErrInvalidExtension = errors.New("files.extensions entries must start with a dot")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if _, err := c.TransformOptions(); err != nil {
		return err
	}

	for _, ext := range c.Files.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}

// TransformOptions maps the transform section onto transform.Options. Empty
// fields keep their defaults.
func (c *Config) TransformOptions() (transform.Options, error) {
	overrides := make(map[string]any)
	if c.Transform.Declaration != "" {
		overrides["declaration"] = c.Transform.Declaration
	}
	if c.Transform.Extract != "" {
		overrides["extract"] = c.Transform.Extract
	}
	if c.Transform.Source != "" {
		overrides["source"] = c.Transform.Source
	}
	return transform.ParseOptions(overrides)
}

// LogLevel parses logging.level. An empty level means info.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Logging.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
}
