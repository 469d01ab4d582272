package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordTables carries taxonomy and clause keyword overrides loaded from an
// optional YAML file. Empty sections keep the built-in tables.
type KeywordTables struct {
	JudgmentSignals []string `yaml:"judgment_signals"`

	Taxonomy []KeywordCategory `yaml:"taxonomy"`
	Clauses  []KeywordCategory `yaml:"clauses"`
}

// KeywordCategory is one named category with its ordered synonym list.
// Keyword order is significant: clause excerpts use first-match-wins.
type KeywordCategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// LoadKeywordTables reads keyword overrides from path. An empty path returns
// zero tables, meaning the built-in defaults stay in effect.
func LoadKeywordTables(path string) (KeywordTables, error) {
	if path == "" {
		return KeywordTables{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return KeywordTables{}, fmt.Errorf("read keyword config: %w", err)
	}

	var tables KeywordTables
	if err := yaml.Unmarshal(raw, &tables); err != nil {
		return KeywordTables{}, fmt.Errorf("parse keyword config: %w", err)
	}

	for _, cat := range append(append([]KeywordCategory{}, tables.Taxonomy...), tables.Clauses...) {
		if cat.Name == "" {
			return KeywordTables{}, fmt.Errorf("keyword config: category with empty name")
		}
		if len(cat.Keywords) == 0 {
			return KeywordTables{}, fmt.Errorf("keyword config: category %q has no keywords", cat.Name)
		}
	}
	return tables, nil
}
