// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lenny-knowledge/internal/query"
)

var queryCmd = &cobra.Command{
	Use:   "query <tool>",
	Short: "Run one knowledge tool and print its answer",
	Long: `Query runs a tool the MCP server exposes (get_framework,
get_best_practices, get_methodology, get_expert_advice, list_topics) and
prints the markdown answer. Pass arguments as --arg key=value.

Example:
  lenny-knowledge query get_framework --arg name=RICE`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringArray("arg", nil, "tool argument as key=value (repeatable)")
	queryCmd.ValidArgs = toolNames()

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetStringArray("arg")
	toolArgs, err := parseToolArgs(raw)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	res := a.dispatcher.Call(args[0], toolArgs)
	if res.IsError {
		return errors.New(res.Text)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	return nil
}

// parseToolArgs turns key=value pairs into a tool argument map. Values keep
// any further "=" characters.
func parseToolArgs(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --arg %q: want key=value", p)
		}
		out[key] = value
	}
	return out, nil
}

// toolNames lists the operations for help and completion.
func toolNames() []string {
	names := make([]string, len(query.Operations))
	for i, op := range query.Operations {
		names[i] = string(op)
	}
	return names
}
