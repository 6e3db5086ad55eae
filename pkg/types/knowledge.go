// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Source attributes a knowledge record to a podcast guest and episode.
type Source struct {
	// Guest is the person credited with the idea.
	Guest string `json:"guest" yaml:"guest"`

	// Episode is the episode title.
	Episode string `json:"episode" yaml:"episode"`

	// URL optionally links to the episode.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Framework is a named, reusable decision procedure such as a
// prioritization scoring method.
type Framework struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Source      Source   `json:"source" yaml:"source"`
	Application string   `json:"application" yaml:"application"`
	Steps       []string `json:"steps,omitempty" yaml:"steps,omitempty"`
	Examples    []string `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// BestPractice is a single actionable recommendation tied to a topic.
type BestPractice struct {
	// Topic is the display label, e.g. "User Research".
	Topic string `json:"topic" yaml:"topic"`

	// Practice is the recommendation itself, one sentence.
	Practice string `json:"practice" yaml:"practice"`

	// Context explains why the practice matters.
	Context string `json:"context" yaml:"context"`

	Source Source   `json:"source" yaml:"source"`
	Quotes []string `json:"quotes,omitempty" yaml:"quotes,omitempty"`
}

// Perspective is one expert's one-line take on a methodology.
type Perspective struct {
	Guest       string `json:"guest" yaml:"guest"`
	Episode     string `json:"episode" yaml:"episode"`
	Perspective string `json:"perspective" yaml:"perspective"`
}

// Methodology is a recurring practice pattern, such as a discovery cadence,
// described by several sources.
type Methodology struct {
	Name          string        `json:"name" yaml:"name"`
	Description   string        `json:"description" yaml:"description"`
	UseCases      []string      `json:"useCases" yaml:"use_cases"`
	KeyPrinciples []string      `json:"keyPrinciples" yaml:"key_principles"`
	Sources       []Perspective `json:"sources" yaml:"sources"`
}

// AdviceRule is one row of the expert advice decision table. The rule
// matches when the lower-cased situation contains any of its keywords.
type AdviceRule struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Text     string   `json:"text" yaml:"text"`
}

// Topic is a named category backed by the episodes that discuss it.
// Episode identifiers keep file line order and are not de-duplicated.
type Topic struct {
	Name     string   `json:"name" yaml:"name"`
	Episodes []string `json:"episodes" yaml:"episodes"`
}

// TopicSummary pairs a topic name with its episode count.
type TopicSummary struct {
	Name     string `json:"name" yaml:"name"`
	Episodes int    `json:"episodes" yaml:"episodes"`
}
