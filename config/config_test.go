package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"url_report/aggregator"
)

func TestSetDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	assert.Equal(t, defaultFormat, cfg.Report.Format)
	assert.Equal(t, defaultBufferSize, cfg.Input.BufferSize)
	assert.Equal(t, defaultLogLevel, cfg.Logger.Level)
	assert.Equal(t, defaultLogEncoding, cfg.Logger.Encoding)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "", cfg.Report.Output)
	assert.Equal(t, 0, cfg.Report.Top)
	assert.Equal(t, aggregator.DefaultBufferSize, cfg.Input.BufferSize)
	assert.Equal(t, 0, cfg.Input.MaxURLLength)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, []string{"stderr"}, cfg.Logger.OutputPaths)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	content := `report:
  format: JSON
  top: 3
input:
  max_url_length: 2048
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, 3, cfg.Report.Top)
	assert.Equal(t, 2048, cfg.Input.MaxURLLength)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  top: 3\n"), 0o600))
	t.Setenv("URLREPORT_REPORT_TOP", "7")
	t.Setenv("URLREPORT_REPORT_FORMAT", "table")

	v, err := NewViper(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Report.Top)
	assert.Equal(t, "table", cfg.Report.Format)
}

func TestNewViper_MissingExplicitFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{name: "unknown format", modify: func(c *Config) { c.Report.Format = "csv" }, field: "report.format"},
		{name: "negative top", modify: func(c *Config) { c.Report.Top = -1 }, field: "report.top"},
		{name: "zero buffer", modify: func(c *Config) { c.Input.BufferSize = 0 }, field: "input.buffer_size"},
		{name: "negative url length", modify: func(c *Config) { c.Input.MaxURLLength = -5 }, field: "input.max_url_length"},
		{name: "url longer than buffer", modify: func(c *Config) { c.Input.MaxURLLength = c.Input.BufferSize }, field: "input.max_url_length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
