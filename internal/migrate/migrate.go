// Package migrate rewrites the tags and categories of every article in a
// directory through the taxonomy tables.
package migrate

import (
	"context"
	"fmt"
	"github.com/dustin/go-humanize"
	"log/slog"
	"os"
	"slices"
	"strings"
	"tagkit/internal/console"
	"tagkit/internal/frontmatter"
	"tagkit/internal/ingest"
	"tagkit/internal/taxonomy"
)

const BackupSuffix = ".backup"

type Options struct {
	DryRun bool
	Backup bool
}

type Stats struct {
	FilesProcessed         int
	FilesModified          int
	FilesFailed            int
	TagsConsolidated       int
	CategoriesConsolidated int
	TagsRemoved            int
}

type Migrator struct {
	Tags       taxonomy.Table
	Categories taxonomy.Table
	Opts       Options

	out *console.Printer
	log *slog.Logger
}

func New(tags, categories taxonomy.Table, opts Options, out *console.Printer, log *slog.Logger) *Migrator {
	if log == nil {
		log = slog.Default()
	}
	return &Migrator{Tags: tags, Categories: categories, Opts: opts, out: out, log: log}
}

// Run processes every markdown file directly inside dir, one at a time. A
// missing directory is an error; a directory without markdown files is not.
// Per-file failures are reported and counted, and the run continues.
func (m *Migrator) Run(ctx context.Context, dir string) (Stats, error) {
	var st Stats

	files, err := ingest.DiscoverSource(dir)
	if err != nil {
		return st, err
	}
	if len(files) == 0 {
		m.out.Printf("No markdown files found in %s", dir)
		return st, nil
	}

	m.out.Printf("Found %s markdown files to process", humanize.Comma(int64(len(files))))
	if m.Opts.DryRun {
		m.out.Printf("Running in DRY RUN mode - no files will be modified")
	}

	for _, sf := range files {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		res, err := m.ProcessFile(sf)
		if err != nil {
			st.FilesFailed++
			m.out.Warnf("Error processing %s: %v", sf.Path, err)
			m.log.Debug("process failed", "file", sf.Path, "err", err)
			continue
		}
		st.FilesProcessed++
		st.TagsConsolidated += res.Tags.Consolidated
		st.TagsRemoved += res.Tags.Removed
		st.CategoriesConsolidated += res.Categories.Consolidated
		if res.Changed {
			st.FilesModified++
		}
	}
	return st, nil
}

type FileResult struct {
	Changed    bool
	Tags       taxonomy.Counts
	Categories taxonomy.Counts
}

// ProcessFile migrates one article. In dry-run mode the file is never
// written; otherwise an optional backup is made before the rewrite.
func (m *Migrator) ProcessFile(sf ingest.SourceFile) (FileResult, error) {
	var res FileResult

	info, err := os.Stat(sf.Path)
	if err != nil {
		return res, err
	}
	raw, err := os.ReadFile(sf.Path)
	if err != nil {
		return res, fmt.Errorf("read: %w", err)
	}

	doc, err := frontmatter.Parse(string(raw))
	if err != nil {
		m.out.Warnf("Error parsing YAML frontmatter in %s: %v", sf.Name, err)
	}
	if !doc.Had || doc.Meta.Len() == 0 {
		m.out.Verbosef("No frontmatter found in %s", sf.Path)
		return res, nil
	}

	oldCats, _ := doc.Meta.Strings(frontmatter.KeyCategories)
	oldTags, _ := doc.Meta.Strings(frontmatter.KeyTags)
	newCats := m.Categories.Migrate(oldCats, &res.Categories)
	newTags := m.Tags.Migrate(oldTags, &res.Tags)

	catsChanged := !slices.Equal(oldCats, newCats)
	tagsChanged := !slices.Equal(oldTags, newTags)
	if !catsChanged && !tagsChanged {
		m.out.Verbosef("No changes needed for %s", sf.Name)
		return res, nil
	}
	res.Changed = true

	if catsChanged {
		doc.Meta.SetStrings(frontmatter.KeyCategories, newCats)
		m.out.Printf("Categories: %s → %s", formatList(oldCats), formatList(newCats))
	}
	if tagsChanged {
		doc.Meta.SetStrings(frontmatter.KeyTags, newTags)
		m.out.Printf("Tags: %s → %s", formatList(oldTags), formatList(newTags))
	}

	if m.Opts.DryRun {
		m.out.Printf("[DRY RUN] Would update %s", sf.Name)
		return res, nil
	}

	updated, err := frontmatter.Encode(doc.Meta, doc.Body)
	if err != nil {
		return res, fmt.Errorf("encode front matter: %w", err)
	}

	if m.Opts.Backup {
		backup := sf.Path + BackupSuffix
		if err := writeBackup(backup, raw, info); err != nil {
			return res, fmt.Errorf("backup: %w", err)
		}
		m.out.Verbosef("Created backup: %s", backup)
	}

	if err := os.WriteFile(sf.Path, []byte(updated), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("write: %w", err)
	}
	m.out.Successf("Updated %s", sf.Name)
	m.log.Debug("rewrote front matter", "file", sf.Path, "bytes", len(updated))
	return res, nil
}

// writeBackup copies the original bytes, permissions and modification time
// and syncs the copy before returning.
func writeBackup(path string, data []byte, info os.FileInfo) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(path, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(path, info.ModTime(), info.ModTime())
}

func formatList(values []string) string {
	return "[" + strings.Join(values, ", ") + "]"
}

// PrintSummary writes the closing counters block.
func (m *Migrator) PrintSummary(st Stats) {
	m.out.Blank()
	m.out.Heading("MIGRATION SUMMARY", 50)
	m.out.Printf("Files processed: %s", humanize.Comma(int64(st.FilesProcessed)))
	m.out.Printf("Files modified: %s", humanize.Comma(int64(st.FilesModified)))
	if st.FilesFailed > 0 {
		m.out.Warnf("Files failed: %s", humanize.Comma(int64(st.FilesFailed)))
	}
	m.out.Printf("Tags consolidated: %s", humanize.Comma(int64(st.TagsConsolidated)))
	m.out.Printf("Categories consolidated: %s", humanize.Comma(int64(st.CategoriesConsolidated)))
	m.out.Printf("Tags removed: %s", humanize.Comma(int64(st.TagsRemoved)))

	if m.Opts.DryRun {
		m.out.Blank()
		m.out.Printf("This was a DRY RUN. Re-run without --dry-run to apply changes.")
	}
}
