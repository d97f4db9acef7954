package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagkit/internal/app"
)

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func sampleArticles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "one.md", "---\ntitle: One\ntags: [go, cli]\ncategories: [technology]\n---\nbody\n")
	writeTestFile(t, dir, "two.markdown", "---\ntitle: Two\ntags: [go]\ncategories: [technology]\n---\nbody\n")
	return dir
}

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

func TestTextReport(t *testing.T) {
	dir := sampleArticles(t)
	code, out, errOut := runCmd(t, "--articles", dir)
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "TAG AND CATEGORY ANALYSIS REPORT")
	assert.Contains(t, out, "Total Articles: 2")
	assert.Contains(t, errOut, "Analyzing 2 markdown files...")
}

func TestJSONReportIsClean(t *testing.T) {
	dir := sampleArticles(t)
	code, out, errOut := runCmd(t, "--articles", dir, "--output", "json", "--sort", "alphabetical")
	require.Equal(t, 0, code, errOut)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc), "stdout must hold only the JSON document")
	assert.Contains(t, doc, "summary")
	assert.Contains(t, doc, "articles")
}

func TestOutputFile(t *testing.T) {
	dir := sampleArticles(t)
	target := filepath.Join(t.TempDir(), "report.csv")
	code, out, errOut := runCmd(t, "--articles", dir, "--output", "csv", "--output-file", target)
	require.Equal(t, 0, code, errOut)

	assert.Equal(t, "Report saved to "+target+"\n", out)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "type,name,count\r\ntag,go,2\r\n"))
}

func TestFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"missing dir", []string{"--articles", filepath.Join(t.TempDir(), "nope")}, 1, "articles directory not found"},
		{"no markdown", []string{"--articles", t.TempDir()}, 1, "no markdown files found"},
		{"bad format", []string{"--output", "xml"}, 1, "unknown output format"},
		{"bad sort", []string{"--sort", "size"}, 1, "unknown sort order"},
		{"stray argument", []string{"extra"}, 1, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCmd(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, errOut, tt.msg)
		})
	}
}

func TestInvalidConfigExitsWithConfigCode(t *testing.T) {
	dir := sampleArticles(t)
	cfg := filepath.Join(t.TempDir(), "tagkit.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("analyze:\n  similarity_threshold: 3\n"), 0o644))

	code, _, errOut := runCmd(t, "--articles", dir, "--config", cfg)
	assert.Equal(t, app.ExitConfig, code)
	assert.Contains(t, errOut, "analyze.similarity_threshold")
}
