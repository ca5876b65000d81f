// Command generator writes a synthetic "<timestampSeconds>|<url>" access log
// for exercising urlreport.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"url_report/logger"
)

const writeBufferSize = 1 << 20 // 1MiB

var malformedSamples = []string{
	"",
	"not a record",
	"1407564301|www.example.com|extra",
	"yesterday|www.example.com",
	"1407564301|",
}

type options struct {
	total          int
	days           int
	urls           int
	malformedRatio float64
	start          int64
	seed           uint64
}

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "generator",
		Short:        "Write a synthetic URL access log to standard output",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.New(&logger.Config{Level: "info"})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := opts.validate(); err != nil {
				return err
			}
			log.Info("Generating access log",
				"total", opts.total,
				"days", opts.days,
				"urls", opts.urls,
				"malformed_ratio", opts.malformedRatio,
				"seed", opts.seed,
			)
			r := rand.New(rand.NewPCG(opts.seed, opts.seed))
			return generate(cmd.OutOrStdout(), opts, r)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.total, "total", 1000, "Total number of lines to generate.")
	f.IntVar(&opts.days, "days", 7, "Number of consecutive UTC days the timestamps span.")
	f.IntVar(&opts.urls, "urls", 50, "Number of distinct URLs.")
	f.Float64Var(&opts.malformedRatio, "malformed-ratio", 0, "Fraction of lines that are malformed.")
	f.Int64Var(&opts.start, "start", time.Date(2014, time.August, 8, 0, 0, 0, 0, time.UTC).Unix(), "Timestamp of the first day.")
	f.Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "Random seed.")
	return cmd
}

func (o options) validate() error {
	switch {
	case o.total < 0:
		return fmt.Errorf("total must not be negative, got %d", o.total)
	case o.days <= 0:
		return fmt.Errorf("days must be positive, got %d", o.days)
	case o.urls <= 0:
		return fmt.Errorf("urls must be positive, got %d", o.urls)
	case o.malformedRatio < 0 || o.malformedRatio > 1:
		return fmt.Errorf("malformed-ratio must be within [0, 1], got %v", o.malformedRatio)
	case o.start < 0:
		return fmt.Errorf("start must not be negative, got %d", o.start)
	}
	return nil
}

// generate writes opts.total lines. URL popularity is skewed so that reports
// show a clear ordering.
func generate(w io.Writer, opts options, r *rand.Rand) error {
	out := bufio.NewWriterSize(w, writeBufferSize)
	span := uint64(opts.days) * 86400
	for i := 0; i < opts.total; i++ {
		if r.Float64() < opts.malformedRatio {
			if _, err := out.WriteString(malformedSamples[r.IntN(len(malformedSamples))] + "\n"); err != nil {
				return err
			}
			continue
		}
		ts := uint64(opts.start) + r.Uint64N(span)
		// Squaring a uniform value favors low indexes.
		u := r.Float64()
		url := fmt.Sprintf("https://www.site%03d.com/", int(u*u*float64(opts.urls)))
		if _, err := out.WriteString(strconv.FormatUint(ts, 10) + "|" + url + "\n"); err != nil {
			return err
		}
	}
	return out.Flush()
}
