package report

import (
	"encoding/json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"io"
	"tagkit/internal/analyze"
	"tagkit/internal/domain/content"
)

type jsonReport struct {
	Summary       analyze.Summary                                     `json:"summary"`
	Tags          *orderedmap.OrderedMap[string, int]                 `json:"tags"`
	Categories    *orderedmap.OrderedMap[string, int]                 `json:"categories"`
	SimilarTags   []analyze.SimilarPair                               `json:"similar_tags"`
	RedundantTags *orderedmap.OrderedMap[string, []analyze.Candidate] `json:"redundant_tags"`
	Articles      []articleRecord                                     `json:"articles"`
}

type articleRecord struct {
	File          string   `json:"file"`
	Title         string   `json:"title"`
	Date          string   `json:"date"`
	Featured      bool     `json:"featured"`
	Draft         bool     `json:"draft"`
	Tags          []string `json:"tags"`
	Categories    []string `json:"categories"`
	TagCount      int      `json:"tag_count"`
	CategoryCount int      `json:"category_count"`
	WordCount     int      `json:"word_count"`
}

func newArticleRecord(a content.Article) articleRecord {
	return articleRecord{
		File:          a.File,
		Title:         a.Title,
		Date:          a.Date,
		Featured:      a.Featured,
		Draft:         a.Draft,
		Tags:          nonNil(a.Tags),
		Categories:    nonNil(a.Categories),
		TagCount:      a.TagCount(),
		CategoryCount: a.CategoryCount(),
		WordCount:     a.WordCount,
	}
}

func renderJSON(w io.Writer, g *analyze.Aggregator, opts Options) error {
	rep := jsonReport{
		Summary:       g.Summary(),
		Tags:          counts(g.Tags().Entries(opts.Sort, opts.MinCount)),
		Categories:    counts(g.Categories().Entries(opts.Sort, opts.MinCount)),
		SimilarTags:   g.SimilarTags(opts.SimilarityThreshold),
		RedundantTags: orderedmap.New[string, []analyze.Candidate](),
		Articles:      []articleRecord{},
	}
	if rep.SimilarTags == nil {
		rep.SimilarTags = []analyze.SimilarPair{}
	}
	for _, r := range g.RedundantTags(opts.RedundancyRatio) {
		rep.RedundantTags.Set(r.Tag, r.Candidates)
	}
	for _, a := range g.Articles() {
		rep.Articles = append(rep.Articles, newArticleRecord(a))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// counts keeps the entry order in the encoded object.
func counts(entries []analyze.Entry) *orderedmap.OrderedMap[string, int] {
	m := orderedmap.New[string, int]()
	for _, e := range entries {
		m.Set(e.Name, e.Count)
	}
	return m
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
