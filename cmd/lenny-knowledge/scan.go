// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lenny-knowledge/internal/transcript"
	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Count framework and practice cues in episode transcripts",
	Long: `Scan reads transcript.md from every episode directory under
transcripts_path, parses its front matter, and counts sentences that mention
framework keywords, best practice indicators and mental model indicators.
Frameworks mentioned more than --min-mentions times are reported. The report
is written to output_path as mentions.yaml or mentions.json.`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("transcripts-path", "episodes", "directory of episode transcript directories")
	scanCmd.Flags().Int("min-mentions", transcript.DefaultMinMentions, "report frameworks mentioned more than this many times")
	scanCmd.Flags().String("format", "yaml", "report format: yaml or json")

	_ = viper.BindPFlag(keyTranscriptsPath, scanCmd.Flags().Lookup("transcripts-path"))
	_ = viper.BindPFlag(keyMinMentions, scanCmd.Flags().Lookup("min-mentions"))

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")

	var cfg types.ScanConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	cfg.Format = types.OutputFormat(formatFlag)

	out := cmd.OutOrStdout()
	summary, err := transcript.ScanAll(cmd.Context(), afero.NewOsFs(), cfg, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d scanned, %d skipped, %d failed\n", summary.Scanned, summary.Skipped, summary.Failed)
	fmt.Fprintf(out, "Report: %s\n", summary.ReportPath)
	if summary.HasFailures() {
		return fmt.Errorf("%d transcript(s) failed scanning", summary.Failed)
	}
	return nil
}
