// Package render writes an ordered daily URL report in one of several formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"url_report/aggregator"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

const (
	writeBufferSize = 1 << 20 // 1MiB
	dateLayout      = "01/02/2006"
)

// ErrUnknownFormat is returned for a format name that has no renderer.
var ErrUnknownFormat = errors.New("unknown report format")

// Renderer writes a report.
type Renderer interface {
	Render(w io.Writer, summary aggregator.Summary, report aggregator.OrderedReport) error
}

// Formats lists the supported format names.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// ParseFormat validates a format name. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// New returns the renderer for a format.
func New(format Format) (Renderer, error) {
	switch format {
	case FormatText:
		return textRenderer{}, nil
	case FormatTable:
		return tableRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatYAML:
		return yamlRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FormatDay renders a day as "MM/DD/YYYY GMT".
func FormatDay(day aggregator.DayKey) string {
	return day.Time().Format(dateLayout) + " GMT"
}

// UnexpectedLines is the summary line for malformed input.
func UnexpectedLines(n int64) string {
	return fmt.Sprintf("There are %d unexpected lines", n)
}
