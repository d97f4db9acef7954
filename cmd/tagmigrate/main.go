// tagmigrate consolidates tags and categories in place across a directory
// of articles.
package main

import (
	"context"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"syscall"
	"tagkit/internal/app"
	"tagkit/internal/console"
	"tagkit/internal/migrate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Execute(ctx, newRootCmd(), os.Args[1:], app.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	stop()
	os.Exit(code)
}

const examples = `  # Dry run to see what changes would be made
  tagmigrate --dry-run --verbose

  # Apply changes with backup
  tagmigrate --backup --verbose

  # Apply changes to a specific directory
  tagmigrate --articles /path/to/articles`

func newRootCmd() *cobra.Command {
	var (
		articles   string
		configPath string
		verbose    bool
		opts       migrate.Options
	)
	cmd := &cobra.Command{
		Use:     "tagmigrate",
		Short:   "Migrate and consolidate tags and categories in blog articles",
		Example: examples,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			out := console.New(cmd.OutOrStdout(), verbose)
			log := console.NewLogger(cmd.ErrOrStderr(), "tagmigrate", verbose)

			m := migrate.New(cfg.TagTable(), cfg.CategoryTable(), opts, out, log)
			st, err := m.Run(cmd.Context(), articles)
			if err != nil {
				return err
			}
			if st.FilesProcessed+st.FilesFailed > 0 {
				m.PrintSummary(st)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&articles, "articles", "./articles", "path to articles directory")
	f.BoolVar(&opts.DryRun, "dry-run", false, "show what would change without modifying files")
	f.BoolVar(&opts.Backup, "backup", false, "write <file>.backup before modifying a file")
	f.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	f.StringVar(&configPath, "config", "", "YAML config file with extra tag/category mappings")
	return cmd
}
