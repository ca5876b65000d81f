package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"url_report/aggregator"
	"url_report/config"
	"url_report/logger"
	"url_report/render"
)

const (
	version      = "1.0.0"
	usageMessage = "Please specify the file name to proceed"
)

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"format":         "report.format",
	"output":         "report.output",
	"top":            "report.top",
	"buffer-size":    "input.buffer_size",
	"max-url-length": "input.max_url_length",
	"log-level":      "logger.level",
	"log-encoding":   "logger.encoding",
}

type app struct {
	cfgFile string
	cfg     *config.Config
	log     logger.Interface
}

func newRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "urlreport <file>",
		Short: "Report daily URL hit counts from a timestamped access log",
		Long: `Reads "<timestampSeconds>|<url>" lines and prints, for every UTC day,
the URLs visited that day with their hit counts, most visited first.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: a.run,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is ./urlreport.yaml)")
	pf.String("log-level", logger.DefaultLevel, "log level (debug, info, warn, error)")
	pf.String("log-encoding", logger.DefaultEncoding, "log encoding (console, json)")

	f := cmd.Flags()
	f.StringP("format", "f", string(render.FormatText), "report format (text, table, json, yaml)")
	f.StringP("output", "o", "", "write the report to this file instead of standard output")
	f.IntP("top", "n", 0, "list at most this many URLs per day (0 lists all)")
	f.Int("buffer-size", aggregator.DefaultBufferSize, "read buffer size in bytes; longer lines count as unexpected lines")
	f.Int("max-url-length", 0, "count URLs longer than this as unexpected lines (0 disables)")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "urlreport version %s\n", version)
		},
	}
}

// setup loads the configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Root()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.cfg = cfg
	a.log = log
	return nil
}

func bindFlags(v *viper.Viper, root *cobra.Command) error {
	for name, key := range flagKeys {
		flag := root.Flags().Lookup(name)
		if flag == nil {
			flag = root.PersistentFlags().Lookup(name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	if len(args) < 1 {
		fmt.Fprintln(stdout, usageMessage)
		return nil
	}
	path := args[0]

	renderer, err := render.New(render.Format(a.cfg.Report.Format))
	if err != nil {
		return err
	}
	out, closeOut, err := a.openOutput(stdout)
	if err != nil {
		return err
	}
	defer closeOut()

	input, err := os.Open(path)
	if err != nil {
		a.log.Warn("Unable to open input file", "path", path, "error", err)
		fmt.Fprintf(stdout, "File not found: %s\n", err)
		return renderer.Render(out, aggregator.Summary{}, nil)
	}
	defer input.Close()

	opts := aggregator.Options{
		BufferSize:   a.cfg.Input.BufferSize,
		MaxURLLength: a.cfg.Input.MaxURLLength,
		Top:          a.cfg.Report.Top,
	}
	result, err := aggregator.New(input, opts, a.log).Run()
	if err != nil {
		a.log.Error("Unable to read input file", "path", path, "error", err)
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := renderer.Render(out, result.Summary, result.Report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// openOutput returns the report destination and a function releasing it.
func (a *app) openOutput(stdout io.Writer) (io.Writer, func(), error) {
	if a.cfg.Report.Output == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(a.cfg.Report.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file %s: %w", a.cfg.Report.Output, err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			a.log.Error("Unable to close output file", "path", a.cfg.Report.Output, "error", err)
		}
	}, nil
}
