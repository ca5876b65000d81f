package config

import (
	"errors"
	"fmt"

	"url_report/render"
)

// ValidationError reports a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs []error

	format, err := render.ParseFormat(c.Report.Format)
	if err != nil {
		errs = append(errs, &ValidationError{Field: "report.format", Message: err.Error()})
	} else {
		c.Report.Format = string(format)
	}
	if c.Report.Top < 0 {
		errs = append(errs, &ValidationError{Field: "report.top", Message: "must not be negative"})
	}
	if c.Input.BufferSize <= 0 {
		errs = append(errs, &ValidationError{Field: "input.buffer_size", Message: "must be positive"})
	}
	if c.Input.MaxURLLength < 0 {
		errs = append(errs, &ValidationError{Field: "input.max_url_length", Message: "must not be negative"})
	}
	if c.Input.MaxURLLength > 0 && c.Input.MaxURLLength >= c.Input.BufferSize {
		errs = append(errs, &ValidationError{Field: "input.max_url_length", Message: "must be smaller than input.buffer_size"})
	}

	return errors.Join(errs...)
}
