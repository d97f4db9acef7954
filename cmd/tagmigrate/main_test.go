package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagkit/internal/app"
)

const post = "---\ntitle: Notes\ntags: [go, k8s, thamel]\ncategories: [General]\n---\nbody\n"

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := app.Execute(context.Background(), newRootCmd(), args, app.Streams{
		In:  strings.NewReader(""),
		Out: &stdout,
		Err: &stderr,
	})
	return code, stdout.String(), stderr.String()
}

func articlesDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post.md"), []byte(post), 0o644))
	return dir
}

func TestDryRun(t *testing.T) {
	dir := articlesDir(t)
	code, out, errOut := runCmd(t, "--articles", dir, "--dry-run")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "Found 1 markdown files to process")
	assert.Contains(t, out, "[DRY RUN] Would update post.md")
	assert.Contains(t, out, "MIGRATION SUMMARY")
	assert.Contains(t, out, "Files modified: 1")
	assert.Contains(t, out, "This was a DRY RUN.")

	data, err := os.ReadFile(filepath.Join(dir, "post.md"))
	require.NoError(t, err)
	assert.Equal(t, post, string(data))
}

func TestConfigExtendsTables(t *testing.T) {
	dir := articlesDir(t)
	cfg := filepath.Join(t.TempDir(), "tagkit.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("migrate:\n  tags:\n    k8s: kubernetes\n"), 0o644))

	code, out, errOut := runCmd(t, "--articles", dir, "--config", cfg, "--backup")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Updated post.md")
	assert.Contains(t, out, "Tags removed: 1")

	data, err := os.ReadFile(filepath.Join(dir, "post.md"))
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Notes\ntags: [golang, kubernetes]\ncategories: [technology]\n---\nbody\n", string(data))
	assert.FileExists(t, filepath.Join(dir, "post.md.backup"))
}

func TestDirectoryOutcomes(t *testing.T) {
	code, _, errOut := runCmd(t, "--articles", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "articles directory not found")

	code, out, _ := runCmd(t, "--articles", t.TempDir())
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "No markdown files found in")
	assert.NotContains(t, out, "MIGRATION SUMMARY")
}
