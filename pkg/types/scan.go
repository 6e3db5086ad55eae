// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EpisodeMetadata is the YAML front matter at the top of a transcript.
// Fields other than guest and title are kept in Extra.
type EpisodeMetadata struct {
	Guest string         `json:"guest" yaml:"guest"`
	Title string         `json:"title,omitempty" yaml:"title,omitempty"`
	Extra map[string]any `json:"extra,omitempty" yaml:",inline"`
}

// KeywordMention counts the sentences in a transcript that start at a
// keyword.
type KeywordMention struct {
	Keyword  string `json:"keyword" yaml:"keyword"`
	Mentions int    `json:"mentions" yaml:"mentions"`
}

// EpisodeScan is the keyword scan of one episode transcript.
type EpisodeScan struct {
	Episode      string           `json:"episode" yaml:"episode"`
	Guest        string           `json:"guest,omitempty" yaml:"guest,omitempty"`
	Title        string           `json:"title,omitempty" yaml:"title,omitempty"`
	Frameworks   []KeywordMention `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
	Practices    []KeywordMention `json:"practices,omitempty" yaml:"practices,omitempty"`
	MentalModels []KeywordMention `json:"mentalModels,omitempty" yaml:"mental_models,omitempty"`
}

// ScanReport collects the scans of every episode in directory order.
type ScanReport struct {
	Episodes []EpisodeScan `json:"episodes" yaml:"episodes"`
}
