// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

const (
	// TranscriptFile is the transcript name inside each episode directory.
	TranscriptFile = "transcript.md"

	reportName = "mentions"
)

// ScanSummary holds counts from a scan run.
type ScanSummary struct {
	Scanned int
	Skipped int
	Failed  int

	// ReportPath is the file the report was written to.
	ReportPath string
}

// Total returns the number of episode directories visited.
func (s ScanSummary) Total() int {
	return s.Scanned + s.Skipped + s.Failed
}

// HasFailures reports whether any transcript failed to scan.
func (s ScanSummary) HasFailures() bool {
	return s.Failed > 0
}

// ScanAll scans transcript.md in every directory under cfg.TranscriptsPath
// and writes the report to cfg.OutputPath as mentions.yaml or
// mentions.json. Directories without a transcript are skipped; unreadable
// or malformed transcripts are counted as failures and do not stop the run.
func ScanAll(ctx context.Context, fsys afero.Fs, cfg types.ScanConfig, w io.Writer) (ScanSummary, error) {
	format := cfg.Format
	if format == "" {
		format = types.FormatYAML
	}
	if format != types.FormatYAML && format != types.FormatJSON {
		return ScanSummary{}, fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	entries, err := afero.ReadDir(fsys, cfg.TranscriptsPath)
	if err != nil {
		return ScanSummary{}, fmt.Errorf("reading transcripts directory %s: %w", cfg.TranscriptsPath, err)
	}

	scanner := NewScanner(cfg.MinMentions)
	var (
		summary ScanSummary
		report  types.ScanReport
	)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if !entry.IsDir() {
			continue
		}

		episode := entry.Name()
		path := filepath.Join(cfg.TranscriptsPath, episode, TranscriptFile)

		data, err := afero.ReadFile(fsys, path)
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(w, "skipped %s\n", episode)
			summary.Skipped++
			continue
		}
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", episode, err)
			summary.Failed++
			continue
		}

		scan, err := scanner.ScanEpisode(episode, string(data))
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", episode, err)
			summary.Failed++
			continue
		}

		for _, m := range scan.Frameworks {
			fmt.Fprintf(w, "found %d mentions of %q in %s\n", m.Mentions, m.Keyword, guestOrEpisode(scan))
		}
		fmt.Fprintf(w, "scanned %s\n", episode)
		report.Episodes = append(report.Episodes, scan)
		summary.Scanned++
	}

	out, err := writeReport(fsys, cfg.OutputPath, format, report)
	if err != nil {
		return summary, err
	}
	summary.ReportPath = out
	return summary, nil
}

func guestOrEpisode(scan types.EpisodeScan) string {
	if scan.Guest != "" {
		return scan.Guest
	}
	return scan.Episode
}

func writeReport(fsys afero.Fs, dir string, format types.OutputFormat, report types.ScanReport) (string, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if format == types.FormatJSON {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = yaml.Marshal(report)
	}
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}

	path := filepath.Join(dir, reportName+"."+string(format))
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
