// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript scans episode transcripts for framework, best practice
// and mental model cues. It counts pattern matches only; nothing is
// summarized or rewritten.
package transcript

import (
	"fmt"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

const frontMatterDelim = "---"

// FrameworkKeywords mark a possible framework or model discussion.
var FrameworkKeywords = []string{
	"framework", "model", "RICE", "OKR", "JTBD", "jobs to be done",
	"north star", "growth loop", "flywheel", "funnel",
}

// PracticeIndicators mark a possible best practice.
var PracticeIndicators = []string{
	"the best way", "what works", "what I recommend", "the key is",
	"most important", "critical to", "always", "never", "you should",
}

// MentalModelIndicators mark a possible mental model.
var MentalModelIndicators = []string{
	"think of it as", "mental model", "way to think about", "framework for thinking",
}

// Parse splits a transcript into its front matter and body. A transcript
// without a leading "---" line has empty metadata and is all body.
func Parse(content string) (types.EpisodeMetadata, string, error) {
	var meta types.EpisodeMetadata

	content = strings.TrimPrefix(content, "\ufeff")
	first, rest, ok := strings.Cut(content, "\n")
	if !ok || strings.TrimSpace(first) != frontMatterDelim {
		return meta, strings.TrimSpace(content), nil
	}

	header, body, found := cutDelimLine(rest)
	if !found {
		return meta, strings.TrimSpace(content), nil
	}
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return meta, "", fmt.Errorf("parsing front matter: %w", err)
	}
	return meta, strings.TrimSpace(body), nil
}

// cutDelimLine splits s at the first line that is exactly the front matter
// delimiter.
func cutDelimLine(s string) (before, after string, found bool) {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimRight(line, "\r") == frontMatterDelim {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}
	return s, "", false
}

// Matcher counts keyword sentences: a keyword followed by text up to the
// next sentence terminator, matched case-insensitively.
type Matcher struct {
	keywords []string
	patterns []*regexp.Regexp
}

// NewMatcher compiles one pattern per keyword.
func NewMatcher(keywords []string) *Matcher {
	m := &Matcher{keywords: keywords, patterns: make([]*regexp.Regexp, len(keywords))}
	for i, k := range keywords {
		m.patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(k) + `[^.!?]*[.!?]`)
	}
	return m
}

// Count returns the number of non-overlapping matches for each keyword,
// in keyword order. Keywords with threshold or fewer matches are omitted.
func (m *Matcher) Count(text string, threshold int) []types.KeywordMention {
	var out []types.KeywordMention
	for i, re := range m.patterns {
		n := len(re.FindAllStringIndex(text, -1))
		if n > threshold {
			out = append(out, types.KeywordMention{Keyword: m.keywords[i], Mentions: n})
		}
	}
	return out
}

// Scanner holds the compiled matchers for all three cue families.
type Scanner struct {
	// MinMentions is the count a framework keyword must exceed to be
	// reported. Practice and mental model cues are reported from one match.
	MinMentions int

	frameworks   *Matcher
	practices    *Matcher
	mentalModels *Matcher
}

// DefaultMinMentions is the framework mention threshold.
const DefaultMinMentions = 2

// NewScanner returns a scanner using the built-in keyword lists. A
// non-positive minMentions selects DefaultMinMentions.
func NewScanner(minMentions int) *Scanner {
	if minMentions <= 0 {
		minMentions = DefaultMinMentions
	}
	return &Scanner{
		MinMentions:  minMentions,
		frameworks:   NewMatcher(FrameworkKeywords),
		practices:    NewMatcher(PracticeIndicators),
		mentalModels: NewMatcher(MentalModelIndicators),
	}
}

// ScanEpisode parses one transcript and counts its cues.
func (s *Scanner) ScanEpisode(episode, content string) (types.EpisodeScan, error) {
	meta, body, err := Parse(content)
	if err != nil {
		return types.EpisodeScan{}, err
	}
	return types.EpisodeScan{
		Episode:      episode,
		Guest:        meta.Guest,
		Title:        meta.Title,
		Frameworks:   s.frameworks.Count(body, s.MinMentions),
		Practices:    s.practices.Count(body, 0),
		MentalModels: s.mentalModels.Count(body, 0),
	}, nil
}
