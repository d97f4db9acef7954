// tagstat reports tag and category usage across a directory of articles.
package main

import (
	"context"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"tagkit/internal/analyze"
	"tagkit/internal/app"
	"tagkit/internal/console"
	"tagkit/internal/ingest"
	"tagkit/internal/report"
	"tagkit/internal/watch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Execute(ctx, newRootCmd(), os.Args[1:], app.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	stop()
	os.Exit(code)
}

type options struct {
	articles   string
	output     string
	sort       string
	minCount   int
	outputFile string
	configPath string
	watch      bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "tagstat",
		Short: "Analyze tags and categories in blog articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStat(cmd.Context(), o, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.articles, "articles", "./articles", "path to articles directory")
	f.StringVar(&o.output, "output", string(report.FormatText), "output format: text, json or csv")
	f.StringVar(&o.sort, "sort", string(analyze.SortFrequency), "sort order: frequency or alphabetical")
	f.IntVar(&o.minCount, "min-count", 1, "minimum usage count to include in the report")
	f.StringVar(&o.outputFile, "output-file", "", "save the report to a file instead of printing it")
	f.StringVar(&o.configPath, "config", "", "YAML config file")
	f.BoolVar(&o.watch, "watch", false, "re-run the analysis whenever an article changes")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log per-file diagnostics")
	return cmd
}

func runStat(ctx context.Context, o options, stdout, stderr io.Writer) error {
	format, err := report.ParseFormat(o.output)
	if err != nil {
		return err
	}
	sortMode, err := report.ParseSort(o.sort)
	if err != nil {
		return err
	}
	cfg, err := app.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	opts := report.Options{
		Format:              format,
		Sort:                sortMode,
		MinCount:            o.minCount,
		Top:                 cfg.Analyze.Top,
		SimilarityThreshold: cfg.Analyze.SimilarityThreshold,
		RedundancyRatio:     cfg.Analyze.RedundancyRatio,
	}
	s := &stat{
		opts:   opts,
		file:   o.outputFile,
		stdout: stdout,
		notes:  console.New(stderr, o.verbose),
		log:    console.NewLogger(stderr, "tagstat", o.verbose),
	}

	if err := s.run(o.articles); err != nil {
		return err
	}
	if !o.watch {
		return nil
	}

	w := &watch.Watcher{Dir: o.articles, Log: s.log}
	return w.Run(ctx, func(context.Context) error {
		return s.run(o.articles)
	})
}

type stat struct {
	opts   report.Options
	file   string
	stdout io.Writer
	notes  *console.Printer
	log    *slog.Logger

	last string
}

// run analyzes dir and writes the report. Unchanged content since the
// previous run is not reported again.
func (s *stat) run(dir string) error {
	res, err := ingest.Ingest(dir)
	if err != nil {
		return err
	}
	if res.Fingerprint == s.last {
		s.log.Debug("no content change", "dir", dir)
		return nil
	}
	s.last = res.Fingerprint

	s.notes.Printf("Analyzing %s markdown files...", humanize.Comma(int64(res.Files)))
	for _, w := range res.Warnings {
		s.log.Warn(w.Msg, "file", w.Path)
	}

	g := analyze.NewAggregator()
	for _, a := range res.Articles {
		g.Add(a)
	}

	if s.file == "" {
		return report.Render(s.stdout, g, s.opts)
	}
	f, err := os.Create(s.file)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := report.Render(f, g, s.opts); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(s.stdout, "Report saved to %s\n", s.file)
	return nil
}
