package aggregator

import (
	"bufio"
	"io"
	"os"

	"url_report/logger"
)

// DefaultBufferSize is the default read buffer. Longer lines are counted as
// malformed.
const DefaultBufferSize = 1 << 20 // 1MiB

// Options tune how an Aggregator reads and trims its input.
type Options struct {
	// BufferSize is the read buffer size in bytes. Lines that do not fit,
	// including their newline, are skipped and counted as malformed.
	BufferSize int
	// MaxURLLength marks longer URLs as malformed. Zero disables the check.
	MaxURLLength int
	// Top keeps at most this many URLs per day. Zero keeps all of them.
	Top int
}

// Result is what a run produces: the line tally and the ordered report.
type Result struct {
	Summary Summary
	Report  OrderedReport
}

// Aggregator groups URL hits by day and orders them for reporting.
type Aggregator struct {
	input io.Reader
	opts  Options
	log   logger.Interface
}

// New creates an Aggregator that reads input in a single pass.
func New(input io.Reader, opts Options, log logger.Interface) *Aggregator {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}
	if log == nil {
		log = logger.NewNop()
	}
	a := &Aggregator{
		input: input,
		opts:  opts,
		log:   log.WithComponent("aggregator"),
	}
	if f, ok := input.(*os.File); ok {
		if info, err := f.Stat(); err == nil {
			a.log.Info("Reading input",
				"name", info.Name(),
				"bytes", info.Size(),
				"buffer_size", opts.BufferSize,
				"max_url_length", opts.MaxURLLength,
				"top", opts.Top,
			)
		}
	}
	return a
}

// Accumulate reads the whole input and returns the per-day hit counts.
// Malformed lines are tallied in the Summary; only errors of the underlying
// reader are returned.
func (a *Aggregator) Accumulate() (*AggregateTable, Summary, error) {
	reader := bufio.NewReaderSize(a.input, a.opts.BufferSize)
	it := newRecordIterator(reader, a.opts.MaxURLLength, a.log)
	table := NewAggregateTable()
	for it.Next() {
		table.Accumulate(it.Value())
	}
	if err := it.Err(); err != nil {
		return nil, it.Summary(), err
	}
	return table, it.Summary(), nil
}

// Run accumulates the input and orders the result.
func (a *Aggregator) Run() (*Result, error) {
	table, summary, err := a.Accumulate()
	if err != nil {
		return nil, err
	}
	report := Order(table, a.opts.Top)
	a.log.Info("Aggregated input",
		"days", table.Len(),
		"valid", summary.Valid,
		"malformed", summary.Malformed,
	)
	return &Result{Summary: summary, Report: report}, nil
}
