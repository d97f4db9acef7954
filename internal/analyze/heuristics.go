package analyze

import (
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"sort"
)

const (
	DefaultSimilarityThreshold = 0.7
	DefaultRedundancyRatio     = 0.8
)

type SimilarPair struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Similarity float64 `json:"similarity"`
}

// Similarity is the SequenceMatcher ratio of the lower-cased strings,
// compared rune by rune.
func Similarity(a, b string) float64 {
	lower := cases.Lower(language.Und)
	return ratio(lower.String(a), lower.String(b))
}

func ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// SimilarTags compares every unordered pair of distinct tags and keeps the
// ones at or above threshold, most similar first.
func (g *Aggregator) SimilarTags(threshold float64) []SimilarPair {
	lower := cases.Lower(language.Und)
	tags := g.tags.Keys()
	folded := make([]string, len(tags))
	for i, t := range tags {
		folded[i] = lower.String(t)
	}

	var out []SimilarPair
	for i := range tags {
		for j := i + 1; j < len(tags); j++ {
			s := ratio(folded[i], folded[j])
			if s >= threshold {
				out = append(out, SimilarPair{A: tags[i], B: tags[j], Similarity: s})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Similarity > out[j].Similarity })
	return out
}

type Candidate struct {
	Tag      string `json:"tag"`
	Together int    `json:"together"`
	Total    int    `json:"total"`
}

type Redundancy struct {
	Tag        string      `json:"tag"`
	Candidates []Candidate `json:"candidates"`
}

// RedundantTags flags B under A when B shows up on at least ratio of A's
// articles. The check is one-directional: A being flagged under B does not
// follow, because the two tags usually have different totals.
func (g *Aggregator) RedundantTags(ratio float64) []Redundancy {
	var out []Redundancy
	for _, a := range g.cooccurOrder {
		total := g.tags.Get(a)
		co := g.cooccur[a]
		var cands []Candidate
		for _, b := range co.order {
			n := co.counts[b]
			if float64(n) >= float64(total)*ratio {
				cands = append(cands, Candidate{Tag: b, Together: n, Total: total})
			}
		}
		if len(cands) > 0 {
			out = append(out, Redundancy{Tag: a, Candidates: cands})
		}
	}
	return out
}

type Pair struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Count int    `json:"count"`
}

// TopCooccurrences returns up to limit tag pairs ordered by how often they
// appear together. limit <= 0 returns all of them.
func (g *Aggregator) TopCooccurrences(limit int) []Pair {
	var out []Pair
	for _, a := range g.cooccurOrder {
		co := g.cooccur[a]
		for _, b := range co.order {
			if a < b {
				out = append(out, Pair{A: a, B: b, Count: co.counts[b]})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
