package content

import (
	"strings"
	"time"
)

// Article is the per-file record the analysis collects. Date keeps the
// literal front matter text; Published is its parsed form, zero if unknown.
type Article struct {
	File       string
	Title      string
	Date       string
	Published  time.Time
	Featured   bool
	Draft      bool
	Tags       []string
	Categories []string
	WordCount  int
}

func (a Article) TagCount() int      { return len(a.Tags) }
func (a Article) CategoryCount() int { return len(a.Categories) }

// Normalize trims whitespace and drops empty and repeated entries, so each
// tag counts once per article. Case is left alone; the similarity report is
// what surfaces "Go" next to "go".
func (a *Article) Normalize() {
	a.Title = strings.TrimSpace(a.Title)
	a.Tags = normalizeStrings(a.Tags)
	a.Categories = normalizeStrings(a.Categories)
}

func normalizeStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
