// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"embed"
	"fmt"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Catalog holds the static knowledge collections shipped with the server.
type Catalog struct {
	Frameworks    []types.Framework
	Practices     map[string][]types.BestPractice
	Methodologies []types.Methodology
	Advice        []types.AdviceRule
	Fallback      string
}

type adviceFile struct {
	Rules    []types.AdviceRule `yaml:"rules"`
	Fallback string             `yaml:"fallback"`
}

// LoadCatalog decodes the embedded data files and validates them.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	var advice adviceFile

	files := []struct {
		name string
		dst  any
	}{
		{"data/frameworks.yaml", &c.Frameworks},
		{"data/practices.yaml", &c.Practices},
		{"data/methodologies.yaml", &c.Methodologies},
		{"data/advice.yaml", &advice},
	}
	for _, f := range files {
		data, err := dataFS.ReadFile(f.name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.name, err)
		}
		if err := yaml.Unmarshal(data, f.dst); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f.name, err)
		}
	}
	c.Advice = advice.Rules
	c.Fallback = advice.Fallback

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every record is named and attributed, that practice
// keys are already normalized, and that advice rules have keywords.
func (c *Catalog) Validate() error {
	for i, f := range c.Frameworks {
		if f.Name == "" {
			return fmt.Errorf("framework %d: missing name", i)
		}
		if f.Source.Guest == "" {
			return fmt.Errorf("framework %q: missing source", f.Name)
		}
	}

	keys := make([]string, 0, len(c.Practices))
	for key := range c.Practices {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if NormalizeTopic(key) != key {
			return fmt.Errorf("practice topic %q is not lower-kebab-case", key)
		}
		for _, p := range c.Practices[key] {
			if p.Source.Guest == "" {
				return fmt.Errorf("practice %q: missing source", p.Practice)
			}
		}
	}

	for _, m := range c.Methodologies {
		if m.Name == "" {
			return fmt.Errorf("methodology: missing name")
		}
		if len(m.Sources) == 0 {
			return fmt.Errorf("methodology %q: missing source", m.Name)
		}
	}

	for _, r := range c.Advice {
		if len(r.Keywords) == 0 {
			return fmt.Errorf("advice rule %q: no keywords", r.Name)
		}
	}
	if c.Fallback == "" {
		return fmt.Errorf("advice: missing fallback text")
	}
	return nil
}
