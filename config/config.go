// Package config loads the report tool configuration from defaults, an
// optional YAML file, URLREPORT_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"url_report/aggregator"
	"url_report/logger"
	"url_report/render"
)

// Default configuration values.
const (
	defaultConfigName   = "urlreport"
	defaultEnvPrefix    = "URLREPORT"
	defaultFormat       = string(render.FormatText)
	defaultBufferSize   = aggregator.DefaultBufferSize
	defaultMaxURLLength = 0
	defaultTop          = 0
	defaultLogLevel     = logger.DefaultLevel
	defaultLogEncoding  = logger.DefaultEncoding
)

// Config holds the application configuration.
type Config struct {
	Report ReportConfig  `mapstructure:"report" yaml:"report"`
	Input  InputConfig   `mapstructure:"input"  yaml:"input"`
	Logger logger.Config `mapstructure:"logger" yaml:"logger"`
}

// ReportConfig controls what is written and where.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	// Output is a file path; empty means standard output.
	Output string `mapstructure:"output" yaml:"output"`
	// Top limits the URLs listed per day; 0 lists all of them.
	Top int `mapstructure:"top" yaml:"top"`
}

// InputConfig controls how the access log is read.
type InputConfig struct {
	BufferSize   int `mapstructure:"buffer_size"    yaml:"buffer_size"`
	MaxURLLength int `mapstructure:"max_url_length" yaml:"max_url_length"`
}

// NewViper returns a viper instance with defaults and environment bindings,
// having read cfgFile or, when cfgFile is empty, ./urlreport.yaml if present.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(defaultEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetViperDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// SetViperDefaults registers every key so that environment overrides apply
// even without a config file.
func SetViperDefaults(v *viper.Viper) {
	v.SetDefault("report.format", defaultFormat)
	v.SetDefault("report.output", "")
	v.SetDefault("report.top", defaultTop)
	v.SetDefault("input.buffer_size", defaultBufferSize)
	v.SetDefault("input.max_url_length", defaultMaxURLLength)
	v.SetDefault("logger.level", defaultLogLevel)
	v.SetDefault("logger.encoding", defaultLogEncoding)
	v.SetDefault("logger.development", false)
	v.SetDefault("logger.output_paths", logger.DefaultOutputPaths)
}

// Load decodes v into a Config, fills remaining defaults and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	setDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Report.Format == "" {
		cfg.Report.Format = defaultFormat
	}
	if cfg.Input.BufferSize == 0 {
		cfg.Input.BufferSize = defaultBufferSize
	}
	cfg.Logger.SetDefaults()
}
