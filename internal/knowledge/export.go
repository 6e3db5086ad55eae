// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

// Collection names one exportable part of the catalog.
type Collection string

const (
	CollectionFrameworks    Collection = "frameworks"
	CollectionBestPractices Collection = "best-practices"
	CollectionMethodologies Collection = "methodologies"
)

// Collections lists every exportable collection in export order.
var Collections = []Collection{CollectionFrameworks, CollectionBestPractices, CollectionMethodologies}

func (s *Store) collection(c Collection) (any, error) {
	switch c {
	case CollectionFrameworks:
		return s.Frameworks(""), nil
	case CollectionBestPractices:
		return s.AllBestPractices(), nil
	case CollectionMethodologies:
		return s.Methodologies(""), nil
	default:
		return nil, fmt.Errorf("unknown collection %q", c)
	}
}

// MarshalCollectionJSON encodes a collection as indented JSON. Frameworks and
// methodologies encode as arrays; best practices as an object keyed by topic.
func (s *Store) MarshalCollectionJSON(c Collection) ([]byte, error) {
	v, err := s.collection(c)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s JSON: %w", c, err)
	}
	return data, nil
}

// MarshalCollectionYAML encodes a collection as YAML.
func (s *Store) MarshalCollectionYAML(c Collection) ([]byte, error) {
	v, err := s.collection(c)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s YAML: %w", c, err)
	}
	return data, nil
}

// Export writes every collection to cfg.OutputPath as <collection>.json or
// <collection>.yaml and reports each file on w.
func (s *Store) Export(cfg types.ExportConfig, w io.Writer) ([]string, error) {
	if err := os.MkdirAll(cfg.OutputPath, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	format := cfg.Format
	if format == "" {
		format = types.FormatJSON
	}

	var written []string
	for _, c := range Collections {
		var (
			data []byte
			err  error
		)
		switch format {
		case types.FormatJSON:
			data, err = s.MarshalCollectionJSON(c)
		case types.FormatYAML:
			data, err = s.MarshalCollectionYAML(c)
		default:
			return written, fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
		if err != nil {
			return written, err
		}

		path := filepath.Join(cfg.OutputPath, string(c)+"."+string(format))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(w, "exported %s\n", path)
		written = append(written, path)
	}
	return written, nil
}
