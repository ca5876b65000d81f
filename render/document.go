package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"url_report/aggregator"
)

type document struct {
	UnexpectedLines int64         `json:"unexpected_lines" yaml:"unexpected_lines"`
	Days            []dayDocument `json:"days"             yaml:"days"`
}

type dayDocument struct {
	Date   string        `json:"date"    yaml:"date"`
	DayKey uint64        `json:"day_key" yaml:"day_key"`
	URLs   []urlDocument `json:"urls"    yaml:"urls"`
}

type urlDocument struct {
	URL  string `json:"url"  yaml:"url"`
	Hits int64  `json:"hits" yaml:"hits"`
}

func newDocument(summary aggregator.Summary, report aggregator.OrderedReport) document {
	doc := document{
		UnexpectedLines: summary.Malformed,
		Days:            make([]dayDocument, 0, len(report)),
	}
	for _, day := range report {
		d := dayDocument{
			Date:   FormatDay(day.Day),
			DayKey: uint64(day.Day),
			URLs:   make([]urlDocument, 0, len(day.URLs)),
		}
		for _, u := range day.URLs {
			d.URLs = append(d.URLs, urlDocument{URL: u.URL, Hits: u.Count})
		}
		doc.Days = append(doc.Days, d)
	}
	return doc
}

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, summary aggregator.Summary, report aggregator.OrderedReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(summary, report))
}

type yamlRenderer struct{}

func (yamlRenderer) Render(w io.Writer, summary aggregator.Summary, report aggregator.OrderedReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(summary, report)); err != nil {
		return err
	}
	return enc.Close()
}
