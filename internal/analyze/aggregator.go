// Package analyze accumulates tag and category statistics over a set of
// articles and derives the summaries, similarity pairs and redundancy hints
// used by the reports.
package analyze

import (
	"math"
	"sort"
	"tagkit/internal/domain/content"
)

// Counter counts string occurrences and remembers the order in which each
// key was first seen.
type Counter struct {
	order  []string
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

func (c *Counter) Inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *Counter) Get(key string) int { return c.counts[key] }
func (c *Counter) Len() int           { return len(c.order) }

// Keys returns keys in first-seen order.
func (c *Counter) Keys() []string {
	return append([]string(nil), c.order...)
}

type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SortMode string

const (
	SortFrequency    SortMode = "frequency"
	SortAlphabetical SortMode = "alphabetical"
)

// Entries lists keys with at least minCount occurrences. Frequency order
// breaks ties by first appearance.
func (c *Counter) Entries(mode SortMode, minCount int) []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, k := range c.order {
		if n := c.counts[k]; n >= minCount {
			out = append(out, Entry{Name: k, Count: n})
		}
	}
	switch mode {
	case SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	}
	return out
}

// Aggregator owns every counter for one analysis run. It is not safe for
// concurrent use; build one per run.
type Aggregator struct {
	articles         []content.Article
	tags             *Counter
	categories       *Counter
	cooccur          map[string]*Counter
	cooccurOrder     []string
	tagArticles      map[string][]string
	categoryArticles map[string][]string
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		tags:             NewCounter(),
		categories:       NewCounter(),
		cooccur:          make(map[string]*Counter),
		tagArticles:      make(map[string][]string),
		categoryArticles: make(map[string][]string),
	}
}

func (g *Aggregator) Add(a content.Article) {
	for _, tag := range a.Tags {
		g.tags.Inc(tag)
		g.tagArticles[tag] = append(g.tagArticles[tag], a.Title)
	}
	for _, cat := range a.Categories {
		g.categories.Inc(cat)
		g.categoryArticles[cat] = append(g.categoryArticles[cat], a.Title)
	}
	for i, t1 := range a.Tags {
		for _, t2 := range a.Tags[i+1:] {
			if t1 == t2 {
				continue
			}
			g.pair(t1).Inc(t2)
			g.pair(t2).Inc(t1)
		}
	}
	g.articles = append(g.articles, a)
}

func (g *Aggregator) pair(tag string) *Counter {
	c, ok := g.cooccur[tag]
	if !ok {
		c = NewCounter()
		g.cooccur[tag] = c
		g.cooccurOrder = append(g.cooccurOrder, tag)
	}
	return c
}

func (g *Aggregator) Articles() []content.Article { return g.articles }
func (g *Aggregator) Tags() *Counter              { return g.tags }
func (g *Aggregator) Categories() *Counter        { return g.categories }

// Cooccurrence is how many articles carry both a and b.
func (g *Aggregator) Cooccurrence(a, b string) int {
	c, ok := g.cooccur[a]
	if !ok {
		return 0
	}
	return c.Get(b)
}

func (g *Aggregator) TagArticles(tag string) []string {
	return append([]string(nil), g.tagArticles[tag]...)
}

func (g *Aggregator) CategoryArticles(cat string) []string {
	return append([]string(nil), g.categoryArticles[cat]...)
}

type ArticleRef struct {
	Title    string `json:"title"`
	File     string `json:"file"`
	TagCount int    `json:"tag_count"`
}

type Summary struct {
	TotalArticles           int         `json:"total_articles"`
	TotalTags               int         `json:"total_tags"`
	TotalCategories         int         `json:"total_categories"`
	AvgTagsPerArticle       float64     `json:"avg_tags_per_article"`
	AvgCategoriesPerArticle float64     `json:"avg_categories_per_article"`
	SingletonTagCount       int         `json:"singleton_tags"`
	SingletonCategoryCount  int         `json:"singleton_categories"`
	MostTagged              *ArticleRef `json:"most_tagged_article"`
	LeastTagged             *ArticleRef `json:"least_tagged_article"`
	SingletonTags           []string    `json:"singleton_tag_list"`
	SingletonCategories     []string    `json:"singleton_category_list"`
}

func (g *Aggregator) Summary() Summary {
	s := Summary{
		TotalArticles:       len(g.articles),
		TotalTags:           g.tags.Len(),
		TotalCategories:     g.categories.Len(),
		SingletonTags:       singletons(g.tags),
		SingletonCategories: singletons(g.categories),
	}
	s.SingletonTagCount = len(s.SingletonTags)
	s.SingletonCategoryCount = len(s.SingletonCategories)

	if len(g.articles) == 0 {
		return s
	}

	var tagSum, catSum int
	most, least := 0, 0
	for i, a := range g.articles {
		tagSum += a.TagCount()
		catSum += a.CategoryCount()
		if a.TagCount() > g.articles[most].TagCount() {
			most = i
		}
		// the last of the tied articles is the least tagged
		if a.TagCount() <= g.articles[least].TagCount() {
			least = i
		}
	}
	n := float64(len(g.articles))
	s.AvgTagsPerArticle = round2(float64(tagSum) / n)
	s.AvgCategoriesPerArticle = round2(float64(catSum) / n)
	s.MostTagged = ref(g.articles[most])
	s.LeastTagged = ref(g.articles[least])
	return s
}

func ref(a content.Article) *ArticleRef {
	return &ArticleRef{Title: a.Title, File: a.File, TagCount: a.TagCount()}
}

func singletons(c *Counter) []string {
	out := []string{}
	for _, k := range c.order {
		if c.counts[k] == 1 {
			out = append(out, k)
		}
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
