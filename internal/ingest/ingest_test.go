package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "tagkit/internal/domain/errors"
)

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverSource(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "b.md", "x")
	writeTestFile(t, dir, "a.markdown", "x")
	writeTestFile(t, dir, "C.MD", "x")
	writeTestFile(t, dir, "notes.txt", "x")
	writeTestFile(t, dir, "a.md.backup", "x")
	writeTestFile(t, dir, "nested/d.md", "x")

	files, err := DiscoverSource(dir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"C.MD", "a.markdown", "b.md"}, names)
	assert.Equal(t, "a", files[1].Stem())
}

func TestDiscoverSourceMissing(t *testing.T) {
	_, err := DiscoverSource(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, domainerr.ErrNoArticlesDir)
}

func TestIngest(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "one.md", "---\ntitle: First\ndate: 2024-01-02\ntags: [go, cli]\ncategories: [technology]\nfeatured: true\n---\n\nSome body words here.\n")
	writeTestFile(t, dir, "two.md", "---\ntags: [go]\n---\nbody\n")
	writeTestFile(t, dir, "broken.md", "---\ntags: [go\n---\nbody\n")
	writeTestFile(t, dir, "plain.md", "# No front matter\n")

	res, err := Ingest(dir)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Files)
	require.Len(t, res.Articles, 2)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Path, "broken.md")

	first := res.Articles[0]
	assert.Equal(t, "one.md", first.File)
	assert.Equal(t, "First", first.Title)
	assert.Equal(t, "2024-01-02", first.Date)
	assert.Equal(t, 2024, first.Published.Year())
	assert.True(t, first.Featured)
	assert.Equal(t, []string{"go", "cli"}, first.Tags)
	assert.Equal(t, 4, first.WordCount)

	second := res.Articles[1]
	assert.Equal(t, "two", second.Title, "title falls back to the file stem")
	assert.Empty(t, second.Categories)
	assert.NotEmpty(t, res.Fingerprint)
}

func TestIngestFingerprintTracksContent(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.md", "---\ntags: [x]\n---\n")

	r1, err := Ingest(dir)
	require.NoError(t, err)
	r2, err := Ingest(dir)
	require.NoError(t, err)
	assert.Equal(t, r1.Fingerprint, r2.Fingerprint)

	writeTestFile(t, dir, "a.md", "---\ntags: [y]\n---\n")
	r3, err := Ingest(dir)
	require.NoError(t, err)
	assert.NotEqual(t, r1.Fingerprint, r3.Fingerprint)
}

func TestIngestEmptyDir(t *testing.T) {
	_, err := Ingest(t.TempDir())
	assert.ErrorIs(t, err, domainerr.ErrNoMarkdown)
}
