// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lenny-knowledge/internal/format"
	"github.com/pdiddy/lenny-knowledge/internal/query"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [name]",
	Short: "List topics in the index, or the episodes for one topic",
	Long: `Topics reads the topic index directory and prints every topic with its
episode count, the same text the list_topics tool returns. With a topic name
it prints the episode identifiers recorded for that topic.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTopics,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		topic, ok := a.store.Topic(args[0])
		if !ok {
			return fmt.Errorf("topic %q not found in %s", args[0], a.cfg.IndexPath)
		}
		fmt.Fprint(out, format.Topic(topic))
		return nil
	}

	res := a.dispatcher.Dispatch(query.ListTopics{})
	if res.IsError {
		return errors.New(res.Text)
	}
	fmt.Fprintln(out, res.Text)
	return nil
}
