// Package logger provides the structured logger used across the report tools.
package logger

import "errors"

// Default configuration values.
const (
	// DefaultLevel is the default logging level.
	DefaultLevel = "warn"
	// DefaultEncoding is the default log encoding format.
	DefaultEncoding = "console"
)

// Default output paths. The report itself is written to stdout, so logs stay
// off it.
var (
	DefaultOutputPaths      = []string{"stderr"}
	DefaultErrorOutputPaths = []string{"stderr"}
)

// Common errors returned by the logger package.
var (
	// ErrInvalidLevel is returned when an invalid logging level is provided.
	ErrInvalidLevel = errors.New("invalid logging level")
	// ErrInvalidEncoding is returned when an invalid log encoding format is provided.
	ErrInvalidEncoding = errors.New("invalid log encoding format")
	// ErrInvalidFields is returned when invalid fields are provided to a logging method.
	ErrInvalidFields = errors.New("invalid fields: must be key-value pairs")
)

// Config represents the logger configuration.
type Config struct {
	// Level is the minimum logging level (debug, info, warn, error, fatal).
	Level string `mapstructure:"level" yaml:"level"`
	// Encoding is either "console" or "json".
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
	// Development enables development mode with colored levels and panics on DPanic.
	Development bool `mapstructure:"development" yaml:"development"`
	// OutputPaths is a list of URLs or file paths to write logging output to.
	OutputPaths []string `mapstructure:"output_paths" yaml:"output_paths"`
}

// SetDefaults applies default values to the config if not set.
func (c *Config) SetDefaults() {
	if c.Level == "" {
		c.Level = DefaultLevel
	}
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
	if len(c.OutputPaths) == 0 {
		c.OutputPaths = DefaultOutputPaths
	}
}
