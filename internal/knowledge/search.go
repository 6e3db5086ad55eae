// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"sort"
	"strings"

	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

// NormalizeTopic turns a topic into its lookup key: trimmed, lower-cased,
// with each run of whitespace replaced by a single hyphen.
func NormalizeTopic(topic string) string {
	return strings.Join(strings.Fields(strings.ToLower(topic)), "-")
}

func containsFold(field, queryLower string) bool {
	return strings.Contains(strings.ToLower(field), queryLower)
}

// Frameworks returns frameworks whose name, description or application
// contains query, case-insensitively, in catalog order. An empty query
// returns every framework.
func (s *Store) Frameworks(query string) []types.Framework {
	q := strings.ToLower(query)
	var out []types.Framework
	for _, f := range s.catalog.Frameworks {
		if q == "" || containsFold(f.Name, q) || containsFold(f.Description, q) || containsFold(f.Application, q) {
			out = append(out, cloneFramework(f))
		}
	}
	return out
}

// BestPractices returns the practices recorded under the normalized topic.
func (s *Store) BestPractices(topic string) []types.BestPractice {
	practices := s.catalog.Practices[NormalizeTopic(topic)]
	out := make([]types.BestPractice, len(practices))
	for i, p := range practices {
		p.Quotes = append([]string(nil), p.Quotes...)
		out[i] = p
	}
	return out
}

// PracticeTopics returns the known best practice keys in sorted order.
func (s *Store) PracticeTopics() []string {
	keys := make([]string, 0, len(s.catalog.Practices))
	for key := range s.catalog.Practices {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// AllBestPractices returns a copy of the whole practice table.
func (s *Store) AllBestPractices() map[string][]types.BestPractice {
	out := make(map[string][]types.BestPractice, len(s.catalog.Practices))
	for key := range s.catalog.Practices {
		out[key] = s.BestPractices(key)
	}
	return out
}

// Methodologies returns methodologies whose name or description contains
// query, case-insensitively. An empty query returns all in stored order.
func (s *Store) Methodologies(query string) []types.Methodology {
	q := strings.ToLower(query)
	var out []types.Methodology
	for _, m := range s.catalog.Methodologies {
		if q == "" || containsFold(m.Name, q) || containsFold(m.Description, q) {
			out = append(out, cloneMethodology(m))
		}
	}
	return out
}

// Advice returns the text of the first advice rule with a keyword contained
// in situation. Later rules are not consulted. When nothing matches the
// fallback text is returned and matched is false.
func (s *Store) Advice(situation string) (text string, matched bool) {
	lower := strings.ToLower(situation)
	for _, rule := range s.catalog.Advice {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Text, true
			}
		}
	}
	return s.catalog.Fallback, false
}

// FrameworkNames lists every framework name in catalog order.
func (s *Store) FrameworkNames() []string {
	names := make([]string, len(s.catalog.Frameworks))
	for i, f := range s.catalog.Frameworks {
		names[i] = f.Name
	}
	return names
}

// MethodologyNames lists every methodology name in catalog order.
func (s *Store) MethodologyNames() []string {
	names := make([]string, len(s.catalog.Methodologies))
	for i, m := range s.catalog.Methodologies {
		names[i] = m.Name
	}
	return names
}

func cloneFramework(f types.Framework) types.Framework {
	f.Steps = append([]string(nil), f.Steps...)
	f.Examples = append([]string(nil), f.Examples...)
	return f
}

func cloneMethodology(m types.Methodology) types.Methodology {
	m.UseCases = append([]string(nil), m.UseCases...)
	m.KeyPrinciples = append([]string(nil), m.KeyPrinciples...)
	m.Sources = append([]types.Perspective(nil), m.Sources...)
	return m
}
