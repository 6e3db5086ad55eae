// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package topicindex builds the topic -> episode mapping from a directory of
// per-topic reference files. Each file names one topic and lists markdown
// links to episode transcripts.
package topicindex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

// OverviewFile is the directory overview that is never treated as a topic.
const OverviewFile = "README.md"

// topicExtensions lists the reference file extensions that name a topic.
var topicExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// Index maps topic name to its episode identifiers.
type Index map[string][]string

// Topics returns the index as Topic records sorted by name.
func (ix Index) Topics() []types.Topic {
	names := make([]string, 0, len(ix))
	for name := range ix {
		names = append(names, name)
	}
	sort.Strings(names)

	topics := make([]types.Topic, len(names))
	for i, name := range names {
		episodes := make([]string, len(ix[name]))
		copy(episodes, ix[name])
		topics[i] = types.Topic{Name: name, Episodes: episodes}
	}
	return topics
}

// FileError records a topic file that could not be read. Topics from other
// files are still returned alongside it.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("reading topic file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Loader reads topic files from Dir on Fs.
type Loader struct {
	Fs  afero.Fs
	Dir string
}

// NewLoader returns a Loader backed by the operating system filesystem.
func NewLoader(dir string) *Loader {
	return &Loader{Fs: afero.NewOsFs(), Dir: dir}
}

// Load reads every eligible file in the directory. A missing directory is
// not an error and yields an empty index. An unreadable directory returns
// an empty index and the read error. Files are processed independently: a
// file that fails to read is reported as a *FileError joined into the
// returned error, and the index still holds every topic parsed successfully.
func (l *Loader) Load() (Index, error) {
	index := Index{}

	entries, err := afero.ReadDir(l.Fs, l.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return index, nil
		}
		return index, fmt.Errorf("reading topic index directory %s: %w", l.Dir, err)
	}

	var errs []error
	for _, entry := range entries {
		name := entry.Name()
		topic, ok := topicName(name)
		if entry.IsDir() || !ok {
			continue
		}

		path := filepath.Join(l.Dir, name)
		data, err := afero.ReadFile(l.Fs, path)
		if err != nil {
			errs = append(errs, &FileError{Path: path, Err: err})
			continue
		}
		index[topic] = ParseEpisodes(string(data))
	}

	return index, errors.Join(errs...)
}

// topicName strips the extension from an eligible reference file name.
func topicName(fileName string) (string, bool) {
	if fileName == OverviewFile || strings.HasPrefix(fileName, ".") {
		return "", false
	}
	ext := filepath.Ext(fileName)
	if !topicExtensions[ext] {
		return "", false
	}
	name := strings.TrimSuffix(fileName, ext)
	return name, name != ""
}

// FileErrors extracts the per-file failures from an error returned by Load.
func FileErrors(err error) []*FileError {
	if err == nil {
		return nil
	}
	var out []*FileError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			var fe *FileError
			if errors.As(e, &fe) {
				out = append(out, fe)
			}
		}
		return out
	}
	var fe *FileError
	if errors.As(err, &fe) {
		out = append(out, fe)
	}
	return out
}
