// Package report renders an analysis as a text report, a JSON document or a
// tag/category CSV listing.
package report

import (
	"fmt"
	"io"
	"tagkit/internal/analyze"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or csv)", s)
}

func ParseSort(s string) (analyze.SortMode, error) {
	switch m := analyze.SortMode(s); m {
	case analyze.SortFrequency, analyze.SortAlphabetical:
		return m, nil
	}
	return "", fmt.Errorf("unknown sort order %q (want frequency or alphabetical)", s)
}

type Options struct {
	Format   Format
	Sort     analyze.SortMode
	MinCount int
	// Top caps the similar, redundant and co-occurrence sections of the
	// text report. JSON output is never capped.
	Top                 int
	SimilarityThreshold float64
	RedundancyRatio     float64
}

func DefaultOptions() Options {
	return Options{
		Format:              FormatText,
		Sort:                analyze.SortFrequency,
		MinCount:            1,
		Top:                 10,
		SimilarityThreshold: analyze.DefaultSimilarityThreshold,
		RedundancyRatio:     analyze.DefaultRedundancyRatio,
	}
}

func Render(w io.Writer, g *analyze.Aggregator, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return renderJSON(w, g, opts)
	case FormatCSV:
		return renderCSV(w, g, opts)
	case FormatText, "":
		return renderText(w, g, opts)
	}
	return fmt.Errorf("unknown output format %q", opts.Format)
}
