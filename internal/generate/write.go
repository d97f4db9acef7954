package generate

import (
	"context"
	"errors"
	"fmt"
	"github.com/goliatone/go-slug"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ProgressEvery is how many articles are written between progress callbacks.
const ProgressEvery = 50

type Result struct {
	Dir     string
	Written int
	Files   []string
}

// WriteAll generates count articles into dir, creating it when needed.
// Existing files are never overwritten; a clashing name gets a numeric
// suffix. progress, when set, is called after every ProgressEvery articles.
func (g *Generator) WriteAll(ctx context.Context, dir string, count int, progress func(done, total int)) (Result, error) {
	res := Result{Dir: dir}
	if count <= 0 {
		return res, fmt.Errorf("article count must be positive, got %d", count)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}

	used := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		a := g.Article()
		text, err := a.Render()
		if err != nil {
			return res, fmt.Errorf("render article %d: %w", i+1, err)
		}
		name, err := uniqueName(dir, Filename(a), used)
		if err != nil {
			return res, err
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
			return res, fmt.Errorf("write %s: %w", name, err)
		}
		res.Written++
		res.Files = append(res.Files, name)
		if progress != nil && res.Written%ProgressEvery == 0 {
			progress(res.Written, count)
		}
	}
	return res, nil
}

// Filename is YYYY-MM-DD-<title slug>.md.
func Filename(a Article) string {
	s := titleSlug(a.Title)
	if s == "" {
		s = "untitled"
	}
	return a.Date.Format("2006-01-02") + "-" + s + ".md"
}

func titleSlug(title string) string {
	s, err := slug.Normalize(title)
	if err != nil || s == "" {
		s = title
	}
	s = slugify(s)
	if len(s) > maxSlugSize {
		s = strings.TrimRight(s[:maxSlugSize], "-")
	}
	return s
}

// slugify lower-cases ASCII letters, keeps digits and collapses every other
// run of characters into a single dash.
func slugify(s string) string {
	s = strings.TrimSpace(s)
	var out []rune
	lastDash := false

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]

		switch {
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			out = append(out, unicode.ToLower(r))
			lastDash = false
		default:
			if !lastDash && len(out) > 0 {
				out = append(out, '-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(string(out), "-")
}

func uniqueName(dir, name string, used map[string]struct{}) (string, error) {
	stem := strings.TrimSuffix(name, ".md")
	candidate := name
	for n := 2; ; n++ {
		_, taken := used[candidate]
		if !taken {
			_, err := os.Stat(filepath.Join(dir, candidate))
			if errors.Is(err, fs.ErrNotExist) {
				used[candidate] = struct{}{}
				return candidate, nil
			}
			if err != nil {
				return "", err
			}
		}
		candidate = fmt.Sprintf("%s-%d.md", stem, n)
	}
}
