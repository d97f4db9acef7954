package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagkit/internal/domain/content"
)

func article(title string, tags []string, cats ...string) content.Article {
	a := content.Article{File: title + ".md", Title: title, Tags: tags, Categories: cats}
	a.Normalize()
	return a
}

func TestCooccurrenceSymmetry(t *testing.T) {
	g := NewAggregator()
	g.Add(article("one", []string{"a", "b", "c"}))

	pairs := [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}
	for _, p := range pairs {
		assert.Equal(t, 1, g.Cooccurrence(p[0], p[1]), "%s,%s", p[0], p[1])
		assert.Equal(t, 1, g.Cooccurrence(p[1], p[0]), "%s,%s", p[1], p[0])
	}
	assert.Zero(t, g.Cooccurrence("a", "a"))

	g.Add(article("two", []string{"b", "a"}))
	assert.Equal(t, 2, g.Cooccurrence("a", "b"))
	assert.Equal(t, 2, g.Cooccurrence("b", "a"))
	assert.Equal(t, 1, g.Cooccurrence("c", "b"))
}

func TestSingletons(t *testing.T) {
	g := NewAggregator()
	g.Add(article("one", []string{"go", "rare"}, "tech"))
	g.Add(article("two", []string{"go", "go"}, "tech", "life"))

	s := g.Summary()
	assert.Equal(t, []string{"rare"}, s.SingletonTags)
	assert.Equal(t, []string{"life"}, s.SingletonCategories)
	assert.Equal(t, 1, s.SingletonTagCount)
	assert.Equal(t, 2, g.Tags().Get("go"), "duplicate tag on one article counts once")
}

func TestSummary(t *testing.T) {
	g := NewAggregator()
	g.Add(article("few", []string{"a"}, "x"))
	g.Add(article("many", []string{"a", "b", "c"}, "x", "y"))
	g.Add(article("also-many", []string{"d", "e", "f"}))
	g.Add(article("also-few", []string{"g"}))

	s := g.Summary()
	assert.Equal(t, 4, s.TotalArticles)
	assert.Equal(t, 7, s.TotalTags)
	assert.Equal(t, 2, s.TotalCategories)
	assert.Equal(t, 2.0, s.AvgTagsPerArticle)
	assert.Equal(t, 0.75, s.AvgCategoriesPerArticle)
	require.NotNil(t, s.MostTagged)
	assert.Equal(t, "many", s.MostTagged.Title, "first article wins a tie")
	assert.Equal(t, "also-few", s.LeastTagged.Title, "last article wins a tie")
	assert.Equal(t, []string{"few", "many"}, g.TagArticles("a"))
	assert.Equal(t, []string{"many"}, g.CategoryArticles("y"))
}

func TestSummaryEmpty(t *testing.T) {
	s := NewAggregator().Summary()
	assert.Zero(t, s.TotalArticles)
	assert.Nil(t, s.MostTagged)
	assert.Empty(t, s.SingletonTags)
}

func TestEntriesSorting(t *testing.T) {
	g := NewAggregator()
	g.Add(article("1", []string{"zeta", "alpha"}))
	g.Add(article("2", []string{"beta", "alpha"}))
	g.Add(article("3", []string{"beta", "alpha"}))

	assert.Equal(t, []Entry{{"alpha", 3}, {"beta", 2}, {"zeta", 1}}, g.Tags().Entries(SortFrequency, 1))
	assert.Equal(t, []Entry{{"alpha", 3}, {"beta", 2}}, g.Tags().Entries(SortFrequency, 2))
	assert.Equal(t, []Entry{{"alpha", 3}, {"beta", 2}, {"zeta", 1}}, g.Tags().Entries(SortAlphabetical, 0))

	g.Add(article("4", []string{"zeta"}))
	assert.Equal(t, []Entry{{"alpha", 3}, {"zeta", 2}, {"beta", 2}}, g.Tags().Entries(SortFrequency, 1), "ties keep first-seen order")
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Golang", "golang"))
	assert.InDelta(t, 12.0/14.0, Similarity("devops", "dev-ops-"), 0.0001)
	assert.Zero(t, Similarity("abc", "xyz"))
}

func TestSimilarTags(t *testing.T) {
	g := NewAggregator()
	g.Add(article("1", []string{"kubernetes", "Kubernetes", "docker", "dockers", "rust"}))

	pairs := g.SimilarTags(DefaultSimilarityThreshold)
	require.Len(t, pairs, 2)
	assert.Equal(t, SimilarPair{A: "kubernetes", B: "Kubernetes", Similarity: 1}, pairs[0])
	assert.Equal(t, "docker", pairs[1].A)
	assert.Equal(t, "dockers", pairs[1].B)
	assert.InDelta(t, 12.0/13.0, pairs[1].Similarity, 0.0001)
}

func TestRedundantTagsIsAsymmetric(t *testing.T) {
	g := NewAggregator()
	g.Add(article("1", []string{"raspberry-pi", "linux"}))
	g.Add(article("2", []string{"raspberry-pi", "linux"}))
	g.Add(article("3", []string{"linux"}))
	g.Add(article("4", []string{"linux", "bash"}))

	got := g.RedundantTags(DefaultRedundancyRatio)
	byTag := map[string][]Candidate{}
	for _, r := range got {
		byTag[r.Tag] = r.Candidates
	}
	assert.Equal(t, []Candidate{{Tag: "linux", Together: 2, Total: 2}}, byTag["raspberry-pi"])
	assert.Equal(t, []Candidate{{Tag: "linux", Together: 1, Total: 1}}, byTag["bash"])
	_, flagged := byTag["linux"]
	assert.False(t, flagged, "linux appears without raspberry-pi most of the time")
}

func TestTopCooccurrences(t *testing.T) {
	g := NewAggregator()
	g.Add(article("1", []string{"b", "a", "c"}))
	g.Add(article("2", []string{"a", "b"}))

	top := g.TopCooccurrences(2)
	assert.Equal(t, []Pair{{"a", "b", 2}, {"a", "c", 1}}, top)
	assert.Len(t, g.TopCooccurrences(0), 3)
}
