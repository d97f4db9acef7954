package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"tagkit/internal/analyze"
)

func renderCSV(w io.Writer, g *analyze.Aggregator, opts Options) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write([]string{"type", "name", "count"}); err != nil {
		return err
	}
	for _, e := range g.Tags().Entries(opts.Sort, opts.MinCount) {
		if err := cw.Write([]string{"tag", e.Name, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	for _, e := range g.Categories().Entries(opts.Sort, opts.MinCount) {
		if err := cw.Write([]string{"category", e.Name, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
