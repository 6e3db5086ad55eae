// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/lenny-knowledge/internal/mcpserver"
	"github.com/pdiddy/lenny-knowledge/internal/topicindex"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Serve loads the topic index once, registers the knowledge tools and
resources, and answers MCP requests on stdin/stdout until the client
disconnects. Logs are written to stderr.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	// A failed load is not fatal: the catalog tools still work and
	// list_topics reports the problem to the client.
	if err := a.store.EnsureLoaded(); err != nil {
		if fileErrs := topicindex.FileErrors(err); len(fileErrs) > 0 {
			for _, fe := range fileErrs {
				a.logger.Warn("skipped topic file", "path", fe.Path, "error", fe.Err)
			}
		} else {
			a.logger.Warn("topic index unavailable", "index_path", a.cfg.IndexPath, "error", err)
		}
	}
	topics, _ := a.store.ListTopics()
	a.logger.Info("loaded topic index", "index_path", a.cfg.IndexPath, "topics", len(topics))

	h := mcpserver.NewHandler(a.store, a.dispatcher, a.logger)
	s := mcpserver.New(h, version)

	a.logger.Info("Lenny Knowledge MCP server running", "version", version)
	if err := mcpserver.Serve(s); err != nil {
		a.logger.Error("server stopped", "error", err)
		return err
	}
	return nil
}
