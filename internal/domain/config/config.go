package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
	domainerr "tagkit/internal/domain/errors"
	"tagkit/internal/taxonomy"
)

type Config struct {
	Analyze  AnalyzeConfig  `yaml:"analyze"`
	Migrate  MigrateConfig  `yaml:"migrate"`
	Generate GenerateConfig `yaml:"generate"`
}

type AnalyzeConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	RedundancyRatio     float64 `yaml:"redundancy_ratio"`
	// Top caps the similar, redundant and co-occurrence sections of the text report.
	Top int `yaml:"top"`
}

// MigrateConfig entries are merged over the built-in tables. A null value
// removes the tag or category.
type MigrateConfig struct {
	Tags       map[string]*string `yaml:"tags"`
	Categories map[string]*string `yaml:"categories"`
}

type GenerateConfig struct {
	ConfirmAbove   int `yaml:"confirm_above"`
	WordsPerMinute int `yaml:"words_per_minute"`
}

func Default() Config {
	return Config{
		Analyze: AnalyzeConfig{
			SimilarityThreshold: 0.7,
			RedundancyRatio:     0.8,
			Top:                 10,
		},
		Generate: GenerateConfig{
			ConfirmAbove:   10000,
			WordsPerMinute: 200,
		},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if c.Analyze.SimilarityThreshold < 0 || c.Analyze.SimilarityThreshold > 1 {
		ve.Add("analyze.similarity_threshold", "must be between 0 and 1")
	}
	if c.Analyze.RedundancyRatio <= 0 || c.Analyze.RedundancyRatio > 1 {
		ve.Add("analyze.redundancy_ratio", "must be in (0, 1]")
	}
	if c.Analyze.Top <= 0 {
		ve.Add("analyze.top", "must be positive")
	}
	if c.Generate.ConfirmAbove <= 0 {
		ve.Add("generate.confirm_above", "must be positive")
	}
	if c.Generate.WordsPerMinute <= 0 {
		ve.Add("generate.words_per_minute", "must be positive")
	}

	tables := []struct {
		field string
		table taxonomy.Table
	}{
		{"migrate.tags", c.TagTable()},
		{"migrate.categories", c.CategoryTable()},
	}
	for _, entry := range tables {
		field := entry.field
		if err := entry.table.Validate(); err != nil {
			var tv domainerr.ValidationError
			if errors.As(err, &tv) {
				ve.Items = append(ve.Items, tv.Prefixed(field).Items...)
				continue
			}
			ve.Add(field, err.Error())
		}
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

// TagTable is the built-in tag table with configured overrides applied.
func (c Config) TagTable() taxonomy.Table {
	return taxonomy.DefaultTags().Merge(toTable(c.Migrate.Tags))
}

func (c Config) CategoryTable() taxonomy.Table {
	return taxonomy.DefaultCategories().Merge(toTable(c.Migrate.Categories))
}

func toTable(entries map[string]*string) taxonomy.Table {
	t := make(taxonomy.Table, len(entries))
	for k, v := range entries {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if v == nil {
			t[k] = taxonomy.Remove()
			continue
		}
		t[k] = taxonomy.Rename(strings.TrimSpace(*v))
	}
	return t
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	// fields present in the file override the defaults, the rest stay as-is
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault returns Default() when path is empty.
func LoadOrDefault(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	return Load(path)
}
