// Package generate synthesizes markdown articles with randomized front
// matter and prose, for load-testing the other tools and the blog engine.
package generate

import (
	"fmt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"math/rand/v2"
	"strings"
	"tagkit/internal/frontmatter"
	"tagkit/internal/markdown"
	"time"
)

type Kind string

const (
	KindTutorial   Kind = "tutorial"
	KindReview     Kind = "review"
	KindOpinion    Kind = "opinion"
	KindGuide      Kind = "guide"
	KindAnalysis   Kind = "analysis"
	KindComparison Kind = "comparison"
)

const (
	// Window is how far back article dates may go.
	Window = 1095 * 24 * time.Hour

	MaxTags     = 8
	DateLayout  = "2006-01-02T15:04:05Z"
	DefaultWPM  = 200
	maxSlugSize = 80
)

type Article struct {
	Title          string
	Description    string
	Category       string
	Kind           Kind
	Date           time.Time
	Tags           []string
	Featured       bool
	Draft          bool
	Author         string
	ReadingMinutes int
	SEOTitle       string
	SEODescription string
	Body           string
}

type Options struct {
	// Seed makes the output reproducible. Zero picks a random seed.
	Seed           uint64
	WordsPerMinute int
	Now            func() time.Time
}

type Generator struct {
	rnd   *rand.Rand
	wpm   int
	start time.Time
	end   time.Time
	md    *markdown.Inspector
	lower cases.Caser
}

func New(opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	wpm := opts.WordsPerMinute
	if wpm <= 0 {
		wpm = DefaultWPM
	}
	end := now().UTC()
	return &Generator{
		rnd:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		wpm:   wpm,
		start: end.Add(-Window),
		end:   end,
		md:    markdown.NewInspector(),
		lower: cases.Lower(language.English),
	}
}

// Range is the span article dates are drawn from.
func (g *Generator) Range() (start, end time.Time) {
	return g.start, g.end
}

func (g *Generator) pick(items []string) string {
	return items[g.rnd.IntN(len(items))]
}

// between returns a uniform int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}

func (g *Generator) chance(p float64) bool {
	return g.rnd.Float64() < p
}

// sample returns n distinct items in random order.
func (g *Generator) sample(items []string, n int) []string {
	perm := g.rnd.Perm(len(items))
	out := make([]string, 0, n)
	for _, i := range perm[:min(n, len(items))] {
		out = append(out, items[i])
	}
	return out
}

// Article builds one random article.
func (g *Generator) Article() Article {
	days := g.rnd.IntN(int(Window/(24*time.Hour)) + 1)
	a := Article{
		Date:     g.start.AddDate(0, 0, days),
		Category: g.pick(categories),
		Kind:     kinds[g.rnd.IntN(len(kinds))],
	}
	a.Title = fill(g.pick(titleTemplates), func(name string) string {
		if choices, ok := titleFills[name]; ok {
			return g.pick(choices)
		}
		return name
	})
	lowerTitle := g.lower.String(a.Title)
	a.Description = fmt.Sprintf(g.pick(descriptions), lowerTitle)
	a.SEOTitle = a.Title + " - Complete Guide"
	a.SEODescription = "Learn " + lowerTitle + " with practical examples, best practices, and expert insights. Comprehensive tutorial for developers."
	a.Tags = g.tags(a.Category, a.Kind)
	a.Featured = g.chance(0.15)
	a.Draft = g.chance(0.10)
	a.Author = g.pick(authors)
	a.Body = g.body(lowerTitle, a.Category, a.Kind)
	a.ReadingMinutes = markdown.ReadingMinutes(g.md.Inspect([]byte(a.Body)).Words, g.wpm)
	return a
}

// tags is the category tag, two to five topic tags and the kind's extras,
// cut to MaxTags with duplicates dropped.
func (g *Generator) tags(category string, kind Kind) []string {
	raw := []string{category}
	raw = append(raw, g.sample(techTopics, g.between(2, 5))...)
	raw = append(raw, kindTags[kind]...)
	if len(raw) > MaxTags {
		raw = raw[:MaxTags]
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ReplaceAll(g.lower.String(t), " ", "-")
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (g *Generator) sentence() string {
	return fill(g.pick(sentenceTemplates), func(name string) string {
		if name == "metric" {
			return fmt.Sprintf("%d%%", g.between(15, 85))
		}
		if choices, ok := sentenceFills[name]; ok {
			return g.pick(choices)
		}
		return name
	})
}

func (g *Generator) paragraph() string {
	n := g.between(3, 7)
	s := make([]string, n)
	for i := range s {
		s[i] = g.sentence()
	}
	return strings.Join(s, " ")
}

// sections writes a random subset of at least four headings, each followed by
// minP to maxP paragraphs.
func (g *Generator) sections(b *strings.Builder, pool []string, minP, maxP int) {
	for _, section := range g.sample(pool, g.between(min(4, len(pool)), len(pool))) {
		b.WriteString(section)
		b.WriteString("\n\n")
		for range g.between(minP, maxP) {
			b.WriteString(g.paragraph())
			b.WriteString("\n\n")
		}
	}
}

func (g *Generator) code(b *strings.Builder) {
	b.WriteString("\n")
	b.WriteString(snippet(g.pick(snippetLanguages)))
	b.WriteString("\n\n")
}

func (g *Generator) body(lowerTitle, category string, kind Kind) string {
	var b strings.Builder
	fmt.Fprintf(&b, "In this comprehensive guide, we'll explore %s. ", lowerTitle)
	fmt.Fprintf(&b, "This %s covers everything from basic concepts to advanced techniques, ", kind)
	fmt.Fprintf(&b, "providing practical insights for developers working in %s.\n\n", g.lower.String(category))

	switch kind {
	case KindTutorial:
		g.sections(&b, tutorialSections, 4, 8)
		for range g.between(2, 4) {
			g.code(&b)
			b.WriteString(g.paragraph())
			b.WriteString("\n\n")
		}
	case KindReview:
		g.sections(&b, reviewSections, 3, 6)
	case KindOpinion:
		g.sections(&b, opinionSections, 4, 7)
	default:
		all := make([]string, 0, len(tutorialSections)+len(reviewSections)+len(opinionSections))
		all = append(all, tutorialSections...)
		all = append(all, reviewSections...)
		all = append(all, opinionSections...)
		g.sections(&b, g.sample(all, g.between(5, 8)), 3, 6)
		if g.chance(0.6) {
			g.code(&b)
		}
	}

	b.WriteString("## Conclusion\n\n")
	b.WriteString(g.paragraph())
	b.WriteString("\n\n")
	b.WriteString(g.paragraph())
	b.WriteString("\n\n")

	if g.chance(0.3) {
		b.WriteString("## What's Next?\n\n")
		b.WriteString(g.paragraph())
		b.WriteString("\n\n")
	}
	return b.String()
}

type scalar struct {
	key    string
	value  any
	quoted bool
}

func setScalars(m *frontmatter.Metadata, fields ...scalar) error {
	for _, f := range fields {
		if err := m.SetScalar(f.key, f.value, f.quoted); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the full file contents: front matter, a blank line, body.
func (a Article) Render() (string, error) {
	m := &frontmatter.Metadata{}
	err := setScalars(m,
		scalar{frontmatter.KeyTitle, a.Title, true},
		scalar{"description", a.Description, true},
	)
	if err != nil {
		return "", err
	}
	m.Set(frontmatter.KeyDate, frontmatter.Date{Literal: a.Date.Format(DateLayout), Time: a.Date})
	m.SetStrings(frontmatter.KeyTags, a.Tags)
	m.SetStrings(frontmatter.KeyCategories, []string{a.Category})
	err = setScalars(m,
		scalar{"featured", a.Featured, false},
		scalar{"draft", a.Draft, false},
		scalar{"author", a.Author, true},
		scalar{"reading_time", fmt.Sprintf("%d min", a.ReadingMinutes), false},
		scalar{"seo_title", a.SEOTitle, true},
		scalar{"seo_description", a.SEODescription, true},
	)
	if err != nil {
		return "", err
	}
	return frontmatter.Encode(m, "\n\n"+a.Body)
}

// fill replaces every {name} in tmpl with value(name).
func fill(tmpl string, value func(name string) string) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			break
		}
		b.WriteString(tmpl[:open])
		b.WriteString(value(tmpl[open+1 : open+end]))
		tmpl = tmpl[open+end+1:]
	}
	b.WriteString(tmpl)
	return b.String()
}
