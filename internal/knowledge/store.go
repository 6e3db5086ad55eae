// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge holds the product management knowledge base: the static
// catalog of frameworks, best practices, methodologies and advice, plus the
// topic index loaded once from disk.
package knowledge

import (
	"fmt"
	"sync"

	"github.com/pdiddy/lenny-knowledge/internal/topicindex"
	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

// TopicLoader produces the topic index. *topicindex.Loader implements it;
// tests supply counting fakes.
type TopicLoader interface {
	Load() (topicindex.Index, error)
}

// Store is the process-wide knowledge base. Construct one with NewStore and
// share it by pointer; the topic index is loaded at most once.
type Store struct {
	catalog *Catalog
	loader  TopicLoader

	once    sync.Once
	topics  topicindex.Index
	loadErr error
}

// NewStore decodes the embedded catalog and returns a store that loads
// topics through loader on first use.
func NewStore(loader TopicLoader) (*Store, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return NewStoreWithCatalog(catalog, loader), nil
}

// NewStoreWithCatalog returns a store over an already decoded catalog.
func NewStoreWithCatalog(catalog *Catalog, loader TopicLoader) *Store {
	return &Store{catalog: catalog, loader: loader}
}

// EnsureLoaded runs the topic loader exactly once. Later and concurrent
// calls wait for the first load and return its error.
func (s *Store) EnsureLoaded() error {
	s.once.Do(func() {
		topics, err := s.loader.Load()
		if topics == nil {
			topics = topicindex.Index{}
		}
		s.topics, s.loadErr = topics, err
	})
	return s.loadErr
}

// ListTopics returns topic names in lexicographic order with episode
// counts. The error is the load error, if any; topics that loaded are
// returned alongside it.
func (s *Store) ListTopics() ([]types.TopicSummary, error) {
	err := s.EnsureLoaded()
	topics := s.topics.Topics()
	summaries := make([]types.TopicSummary, len(topics))
	for i, t := range topics {
		summaries[i] = types.TopicSummary{Name: t.Name, Episodes: len(t.Episodes)}
	}
	return summaries, err
}

// Topic returns the episodes recorded for a topic.
func (s *Store) Topic(name string) (types.Topic, bool) {
	_ = s.EnsureLoaded()
	episodes, ok := s.topics[name]
	if !ok {
		return types.Topic{}, false
	}
	return types.Topic{Name: name, Episodes: append([]string(nil), episodes...)}, true
}
