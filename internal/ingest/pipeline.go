package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"tagkit/internal/domain/content"
	domainerr "tagkit/internal/domain/errors"
	"tagkit/internal/frontmatter"
	"tagkit/internal/markdown"
)

type Warning struct {
	Path string
	Msg  string
}

type Result struct {
	Articles []content.Article
	Warnings []Warning
	// Files is the number of markdown files found, Failed how many of them
	// could not be read.
	Files  int
	Failed int
	// Fingerprint changes whenever any scanned file's content does.
	Fingerprint string
}

// Ingest reads every markdown file in sourceDir, one at a time, in name
// order. Files without usable front matter are skipped with a warning where
// there is something to report; only a missing directory or an empty one
// is returned as an error.
func Ingest(sourceDir string) (*Result, error) {
	files, err := DiscoverSource(sourceDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", domainerr.ErrNoMarkdown, sourceDir)
	}

	md := markdown.NewInspector()
	res := &Result{Files: len(files)}
	fp := sha256.New()

	for _, sf := range files {
		raw, readErr := os.ReadFile(sf.Path)
		if readErr != nil {
			res.Failed++
			res.Warnings = append(res.Warnings, Warning{Path: sf.Path, Msg: "read failed: " + readErr.Error()})
			continue
		}
		fp.Write([]byte(sf.Name))
		fp.Write([]byte(HashBytes(raw)))

		doc, fmErr := frontmatter.Parse(string(raw))
		if fmErr != nil {
			res.Warnings = append(res.Warnings, Warning{
				Path: sf.Path,
				Msg:  "failed to parse front matter: " + fmErr.Error(),
			})
			continue
		}
		if doc.Meta.Len() == 0 {
			continue
		}

		a := ArticleFromDocument(sf, doc)
		a.WordCount = md.Inspect([]byte(doc.Body)).Words
		res.Articles = append(res.Articles, a)
	}
	res.Fingerprint = hex.EncodeToString(fp.Sum(nil))
	return res, nil
}

// ArticleFromDocument pulls the fields the analysis cares about out of a
// decoded document. A missing title falls back to the file stem.
func ArticleFromDocument(sf SourceFile, doc frontmatter.Document) content.Article {
	m := doc.Meta
	a := content.Article{File: sf.Name}

	if title, ok := m.Scalar(frontmatter.KeyTitle); ok {
		a.Title = title
	}
	if a.Title == "" {
		a.Title = sf.Stem()
	}
	if d, ok := m.Date(); ok {
		a.Date = d.Literal
		a.Published = d.Time
	}
	a.Featured = m.Bool("featured")
	a.Draft = m.Bool("draft")
	a.Tags, _ = m.Strings(frontmatter.KeyTags)
	a.Categories, _ = m.Strings(frontmatter.KeyCategories)
	a.Normalize()
	return a
}
