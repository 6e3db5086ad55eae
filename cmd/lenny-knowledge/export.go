// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the knowledge catalog to files",
	Long: `Export writes the frameworks, best practices and methodologies to
output_path as frameworks, best-practices and methodologies files in JSON
(the resource format) or YAML.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "json", "export format: yaml or json")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	formatFlag, _ := cmd.Flags().GetString("format")
	cfg := types.ExportConfig{
		OutputPath: viper.GetString(keyOutputPath),
		Format:     types.OutputFormat(formatFlag),
	}

	written, err := a.store.Export(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	a.logger.Debug("export complete", "files", len(written), "output_path", cfg.OutputPath)
	return nil
}
