package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	domainerr "tagkit/internal/domain/errors"
)

type SourceFile struct {
	Path string
	Name string
}

// Stem is the file name without its extension.
func (f SourceFile) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

func IsMarkdown(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}

// DiscoverSource lists the markdown files directly inside root, sorted by
// name. Subdirectories are not descended into.
func DiscoverSource(root string) ([]SourceFile, error) {
	st, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domainerr.ErrNoArticlesDir, root)
		}
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domainerr.ErrNoArticlesDir, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var out []SourceFile
	for _, e := range entries {
		if e.IsDir() || !IsMarkdown(e.Name()) {
			continue
		}
		out = append(out, SourceFile{Path: filepath.Join(root, e.Name()), Name: e.Name()})
	}
	return out, nil
}

func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
