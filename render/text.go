package render

import (
	"bufio"
	"fmt"
	"io"

	"url_report/aggregator"
)

// textRenderer writes the plain report: an optional unexpected-lines summary,
// then a date header per day followed by "<url> <count>" lines.
type textRenderer struct{}

func (textRenderer) Render(w io.Writer, summary aggregator.Summary, report aggregator.OrderedReport) error {
	out := bufio.NewWriterSize(w, writeBufferSize)
	if summary.Malformed > 0 {
		if _, err := fmt.Fprintln(out, UnexpectedLines(summary.Malformed)); err != nil {
			return err
		}
	}
	for _, day := range report {
		if _, err := fmt.Fprintln(out, FormatDay(day.Day)); err != nil {
			return err
		}
		for _, u := range day.URLs {
			if _, err := fmt.Fprintf(out, "%s %d\n", u.URL, u.Count); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}
