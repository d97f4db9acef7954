package report

import (
	"fmt"
	"github.com/mattn/go-runewidth"
	"io"
	"sort"
	"strconv"
	"strings"
	"tagkit/internal/analyze"
)

type lines []string

func (l *lines) add(format string, args ...any) {
	*l = append(*l, fmt.Sprintf(format, args...))
}

func (l *lines) rule(n int) {
	*l = append(*l, strings.Repeat("-", n))
}

func (l *lines) section(title string, width int) {
	*l = append(*l, "", title)
	l.rule(width)
}

// pad left-justifies s in a column of width terminal cells.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func renderText(w io.Writer, g *analyze.Aggregator, opts Options) error {
	s := g.Summary()
	var out lines

	out = append(out, strings.Repeat("=", 60), "TAG AND CATEGORY ANALYSIS REPORT", strings.Repeat("=", 60))

	out.section("SUMMARY STATISTICS", 30)
	out.add("Total Articles: %d", s.TotalArticles)
	out.add("Total Unique Tags: %d", s.TotalTags)
	out.add("Total Unique Categories: %d", s.TotalCategories)
	out.add("Average Tags per Article: %s", decimal(s.AvgTagsPerArticle))
	out.add("Average Categories per Article: %s", decimal(s.AvgCategoriesPerArticle))
	out.add("Singleton Tags (used once): %d", s.SingletonTagCount)
	out.add("Singleton Categories (used once): %d", s.SingletonCategoryCount)

	if s.MostTagged != nil {
		out = append(out, "")
		out.add("Most Tagged Article: '%s' (%d tags)", s.MostTagged.Title, s.MostTagged.TagCount)
	}
	if s.LeastTagged != nil {
		out.add("Least Tagged Article: '%s' (%d tags)", s.LeastTagged.Title, s.LeastTagged.TagCount)
	}

	out.section(fmt.Sprintf("TAG FREQUENCY ANALYSIS (min count: %d)", opts.MinCount), 50)
	for _, e := range g.Tags().Entries(opts.Sort, opts.MinCount) {
		out.add("%s : %3d articles", pad(e.Name, 30), e.Count)
	}

	out.section(fmt.Sprintf("CATEGORY FREQUENCY ANALYSIS (min count: %d)", opts.MinCount), 50)
	for _, e := range g.Categories().Entries(opts.Sort, opts.MinCount) {
		out.add("%s : %3d articles", pad(e.Name, 30), e.Count)
	}

	if len(s.SingletonTags) > 0 {
		out.section(fmt.Sprintf("SINGLETON TAGS (%d total)", len(s.SingletonTags)), 30)
		tags := sortedCopy(s.SingletonTags)
		for i := 0; i < len(tags); i += 3 {
			var row strings.Builder
			for _, t := range tags[i:min(i+3, len(tags))] {
				row.WriteString(pad(t, 25))
			}
			out = append(out, strings.TrimRight(row.String(), " "))
		}
	}

	if len(s.SingletonCategories) > 0 {
		out.section(fmt.Sprintf("SINGLETON CATEGORIES (%d total)", len(s.SingletonCategories)), 30)
		for _, c := range sortedCopy(s.SingletonCategories) {
			out.add("  %s", c)
		}
	}

	if similar := g.SimilarTags(opts.SimilarityThreshold); len(similar) > 0 {
		out.section("POTENTIALLY SIMILAR TAGS", 30)
		for _, p := range capped(similar, opts.Top) {
			out.add("%s <-> %s (similarity: %.2f)", pad(p.A, 20), pad(p.B, 20), p.Similarity)
		}
	}

	if redundant := g.RedundantTags(opts.RedundancyRatio); len(redundant) > 0 {
		out.section("POTENTIAL TAG REDUNDANCIES", 30)
		for _, r := range capped(redundant, opts.Top) {
			out.add("%s:", r.Tag)
			for _, c := range r.Candidates {
				out.add("  -> %s (appears together %d/%d times)", c.Tag, c.Together, c.Total)
			}
		}
	}

	out.section("TOP TAG CO-OCCURRENCES", 30)
	for _, p := range g.TopCooccurrences(opts.Top) {
		out.add("%s + %s : %d times", pad(p.A, 20), pad(p.B, 20), p.Count)
	}

	_, err := io.WriteString(w, strings.Join(out, "\n")+"\n")
	return err
}

// decimal prints f with as many digits as it needs, but at least one.
func decimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func capped[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
