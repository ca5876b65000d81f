package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"url_report/aggregator"
)

// tableRenderer draws one box-drawn table with a row per URL and the date
// shown on the first row of each day.
type tableRenderer struct{}

func (tableRenderer) Render(w io.Writer, summary aggregator.Summary, report aggregator.OrderedReport) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Date", "URL", "Hits"})

	for i, day := range report {
		if i > 0 {
			t.AppendSeparator()
		}
		date := FormatDay(day.Day)
		for j, u := range day.URLs {
			if j > 0 {
				date = ""
			}
			t.AppendRow(table.Row{date, u.URL, u.Count})
		}
	}
	if summary.Malformed > 0 {
		t.AppendFooter(table.Row{"", "Unexpected lines", summary.Malformed})
	}

	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}
