package generate

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	adrg "github.com/adrg/frontmatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagkit/internal/frontmatter"
)

var fixedNow = func() time.Time { return time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC) }

func newTestGenerator(seed uint64) *Generator {
	return New(Options{Seed: seed, Now: fixedNow})
}

func TestSeedIsReproducible(t *testing.T) {
	a := newTestGenerator(42).Article()
	b := newTestGenerator(42).Article()
	assert.Equal(t, a, b)

	c := newTestGenerator(43).Article()
	assert.NotEqual(t, a.Body, c.Body)
}

func TestArticleShape(t *testing.T) {
	g := newTestGenerator(7)
	start, end := g.Range()
	assert.Equal(t, end.Add(-Window), start)

	for i := 0; i < 200; i++ {
		a := g.Article()

		assert.False(t, a.Date.Before(start), a.Date)
		assert.False(t, a.Date.After(end), a.Date)
		assert.NotContains(t, a.Title, "{")
		assert.NotContains(t, a.Body, "{")
		assert.Contains(t, a.Body, "## Conclusion")
		assert.GreaterOrEqual(t, a.ReadingMinutes, 1)

		require.NotEmpty(t, a.Tags)
		assert.LessOrEqual(t, len(a.Tags), MaxTags)
		assert.Equal(t, strings.ReplaceAll(strings.ToLower(a.Category), " ", "-"), a.Tags[0])
		seen := map[string]bool{}
		for _, tag := range a.Tags {
			assert.False(t, seen[tag], "duplicate tag %s", tag)
			seen[tag] = true
			assert.Equal(t, strings.ToLower(tag), tag)
			assert.NotContains(t, tag, " ")
		}
	}
}

func TestTutorialsCarryCode(t *testing.T) {
	g := newTestGenerator(11)
	found := false
	for i := 0; i < 100 && !found; i++ {
		a := g.Article()
		if a.Kind != KindTutorial {
			continue
		}
		found = true
		assert.Contains(t, a.Body, "```")
		assert.Contains(t, a.Tags, "tutorial")
	}
	assert.True(t, found, "expected at least one tutorial in 100 articles")
}

func TestRenderParsesElsewhere(t *testing.T) {
	a := newTestGenerator(3).Article()
	text, err := a.Render()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(text, "---\ntitle: \""))

	var meta struct {
		Title          string    `yaml:"title"`
		Description    string    `yaml:"description"`
		Date           time.Time `yaml:"date"`
		Tags           []string  `yaml:"tags"`
		Categories     []string  `yaml:"categories"`
		Featured       bool      `yaml:"featured"`
		Draft          bool      `yaml:"draft"`
		Author         string    `yaml:"author"`
		ReadingTime    string    `yaml:"reading_time"`
		SEOTitle       string    `yaml:"seo_title"`
		SEODescription string    `yaml:"seo_description"`
	}
	rest, err := adrg.Parse(strings.NewReader(text), &meta)
	require.NoError(t, err)

	assert.Equal(t, a.Title, meta.Title)
	assert.Equal(t, a.Description, meta.Description)
	assert.True(t, a.Date.Equal(meta.Date))
	assert.Equal(t, a.Tags, meta.Tags)
	assert.Equal(t, []string{a.Category}, meta.Categories)
	assert.Equal(t, a.Featured, meta.Featured)
	assert.Equal(t, a.Draft, meta.Draft)
	assert.Equal(t, a.Author, meta.Author)
	assert.Regexp(t, `^\d+ min$`, meta.ReadingTime)
	assert.Equal(t, a.SEOTitle, meta.SEOTitle)
	assert.Contains(t, string(rest), strings.TrimSpace(a.Body))

	doc, err := frontmatter.Parse(text)
	require.NoError(t, err)
	tags, ok := doc.Meta.Strings(frontmatter.KeyTags)
	require.True(t, ok)
	assert.Equal(t, a.Tags, tags)
	d, ok := doc.Meta.Date()
	require.True(t, ok)
	assert.Equal(t, a.Date.Format(DateLayout), d.Literal)
}

func TestFilename(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-[a-z0-9]+(-[a-z0-9]+)*\.md$`)
	g := newTestGenerator(5)
	for i := 0; i < 100; i++ {
		a := g.Article()
		name := Filename(a)
		assert.Regexp(t, pattern, name)
		assert.True(t, strings.HasPrefix(name, a.Date.Format("2006-01-02")+"-"))
		assert.LessOrEqual(t, len(titleSlug(a.Title)), maxSlugSize)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Is Go Worth the Hype? A Developer's Perspective": "is-go-worth-the-hype-a-developer-s-perspective",
		"CI/CD Pipeline Design with Vue.js":               "ci-cd-pipeline-design-with-vue-js",
		"  --Already-Slugged--  ":                         "already-slugged",
		"Café Ünïcode":                                    "caf-n-code",
		"":                                                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, slugify(in), in)
	}
}

func TestFill(t *testing.T) {
	out := fill("{a} and {b} or {missing", func(name string) string { return strings.ToUpper(name) })
	assert.Equal(t, "A and B or {missing", out)
}

func TestUniqueName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.md"), []byte("taken"), 0o644))

	used := map[string]struct{}{}
	first, err := uniqueName(dir, "x.md", used)
	require.NoError(t, err)
	assert.Equal(t, "x-2.md", first)

	second, err := uniqueName(dir, "x.md", used)
	require.NoError(t, err)
	assert.Equal(t, "x-3.md", second)
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var calls []int

	res, err := newTestGenerator(9).WriteAll(context.Background(), dir, 120, func(done, total int) {
		assert.Equal(t, 120, total)
		calls = append(calls, done)
	})
	require.NoError(t, err)

	assert.Equal(t, 120, res.Written)
	assert.Equal(t, []int{50, 100}, calls)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 120)
}

func TestWriteAllRejectsBadCount(t *testing.T) {
	_, err := newTestGenerator(1).WriteAll(context.Background(), t.TempDir(), 0, nil)
	assert.Error(t, err)
}

func TestWriteAllHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := newTestGenerator(1).WriteAll(ctx, t.TempDir(), 10, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Written)
}
