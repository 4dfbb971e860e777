// Package catalogue loads a pattern catalogue — an alphabet plus a list
// of pattern strings, each with an optional symmetry group — from a
// YAML document, producing a canonical-key-deduplicated set of
// *pattern.Pattern ready for matcher.NewPatternMatcher.
//
// Grounded on projectdiscovery/alterx's YAML-driven rule configuration
// (config.go's Config struct, unmarshalled with github.com/goccy/go-yaml
// the way internal/runner/config.go does).
package catalogue

import (
	"fmt"
	"os"

	"github.com/coregx/gridmatch/internal/idmap"
	"github.com/coregx/gridmatch/pattern"
	"github.com/goccy/go-yaml"
)

// Config is the YAML document shape: an alphabet string and a list of
// pattern rules, each a "/"-row "*"-wildcard pattern string plus an
// optional dihedral symmetry group expanded at load time.
type Config struct {
	Alphabet string `yaml:"alphabet"`
	Patterns []Rule `yaml:"patterns"`
}

// Rule is one catalogue entry before symmetry expansion.
type Rule struct {
	Pattern string `yaml:"pattern"`
	// Symmetry is one of "", "identity", "mirror", "rot4", "all" (see
	// pattern.Pattern.Symmetries). Empty means "identity".
	Symmetry string `yaml:"symmetry"`
}

// Catalogue is a loaded, deduplicated, ready-to-compile pattern set.
type Catalogue struct {
	Alphabet *pattern.Alphabet
	Patterns []*pattern.Pattern
}

// Load reads and parses a YAML catalogue document from path.
func Load(path string) (*Catalogue, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalogue: reading %s: %w", path, err)
	}
	return Parse(bin)
}

// Parse decodes a YAML catalogue document, parses every rule's pattern
// string against the document's alphabet, expands each rule's symmetry
// group, and deduplicates the result by canonical pattern key.
func Parse(doc []byte) (*Catalogue, error) {
	var cfg Config
	if err := yaml.Unmarshal(doc, &cfg); err != nil {
		return nil, fmt.Errorf("catalogue: %s", yaml.FormatError(err, false, true))
	}
	if cfg.Alphabet == "" {
		return nil, fmt.Errorf("catalogue: alphabet must not be empty")
	}
	if len(cfg.Patterns) == 0 {
		return nil, fmt.Errorf("catalogue: patterns must not be empty")
	}

	alphabet := pattern.NewAlphabet(cfg.Alphabet)
	dedup := idmap.New(func(p *pattern.Pattern) string { return p.Key() })

	for _, rule := range cfg.Patterns {
		p, err := pattern.Parse(alphabet, rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("catalogue: rule %q: %w", rule.Pattern, err)
		}
		for _, variant := range p.Symmetries(rule.Symmetry) {
			dedup.GetOrCreateID(variant)
		}
	}

	patterns := make([]*pattern.Pattern, dedup.Size())
	dedup.Each(func(id int, p *pattern.Pattern) { patterns[id] = p })

	return &Catalogue{Alphabet: alphabet, Patterns: patterns}, nil
}
