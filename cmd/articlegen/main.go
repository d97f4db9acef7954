// articlegen writes synthetic markdown articles for load testing the other
// tools and the site build.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"tagkit/internal/app"
	"tagkit/internal/console"
	"tagkit/internal/generate"
)

const (
	defaultCount = 500
	defaultDir   = "temp_articles"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Execute(ctx, newRootCmd(), os.Args[1:], app.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	stop()
	os.Exit(code)
}

func newRootCmd() *cobra.Command {
	var (
		seed       uint64
		yes        bool
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "articlegen [count] [output_dir]",
		Short: "Generate synthetic markdown articles for testing",
		Example: `  articlegen 1000 ./test_articles
  articlegen 50 --seed 42`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, dir, err := parseArgs(args)
			if err != nil {
				return err
			}
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			out := console.New(cmd.OutOrStdout(), false)

			if count > cfg.Generate.ConfirmAbove && !yes {
				out.Warnf("Warning: Generating more than %s articles may take a long time", humanize.Comma(int64(cfg.Generate.ConfirmAbove)))
				ok, err := confirm(cmd.InOrStdin(), out.Writer(), "Continue? (y/N): ")
				if err != nil {
					return err
				}
				if !ok {
					out.Printf("Cancelled")
					return nil
				}
			}

			g := generate.New(generate.Options{Seed: seed, WordsPerMinute: cfg.Generate.WordsPerMinute})
			out.Printf("Generating %s articles in %s/...", humanize.Comma(int64(count)), dir)
			res, err := g.WriteAll(cmd.Context(), dir, count, func(done, total int) {
				out.Printf("Generated %s/%s articles...", humanize.Comma(int64(done)), humanize.Comma(int64(total)))
			})
			if err != nil {
				return err
			}

			start, end := g.Range()
			out.Successf("Successfully generated %s articles in %s/", humanize.Comma(int64(res.Written)), dir)
			out.Printf("Articles range from %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
			return nil
		},
	}
	f := cmd.Flags()
	f.Uint64Var(&seed, "seed", 0, "random seed for reproducible output (0 picks one)")
	f.BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt for large counts")
	f.StringVar(&configPath, "config", "", "YAML config file")
	return cmd
}

func parseArgs(args []string) (int, string, error) {
	count, dir := defaultCount, defaultDir
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, "", fmt.Errorf("'%s' is not a valid number", args[0])
		}
		if n <= 0 {
			return 0, "", errors.New("number of articles must be positive")
		}
		count = n
	}
	if len(args) > 1 {
		dir = args[1]
	}
	return count, dir, nil
}

// confirm reads one line from in; only "y" or "Y" counts as yes.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
