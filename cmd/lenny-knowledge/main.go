// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lenny-knowledge CLI. The serve
// command runs the MCP server over stdio; the other commands expose the same
// knowledge base for scripting and debugging.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lenny-knowledge/internal/knowledge"
	"github.com/pdiddy/lenny-knowledge/internal/query"
	"github.com/pdiddy/lenny-knowledge/internal/topicindex"
	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Configuration keys. Each is also read from LENNY_<KEY>.
const (
	keyIndexPath       = "index_path"
	keyTranscriptsPath = "transcripts_path"
	keyOutputPath      = "output_path"
	keyLogLevel        = "log_level"
	keyMinMentions     = "min_mentions"
)

// rootCmd is the base command for the lenny-knowledge CLI.
var rootCmd = &cobra.Command{
	Use:   "lenny-knowledge",
	Short: "Product management knowledge from Lenny's Podcast over MCP",
	Long: `lenny-knowledge serves a curated product management knowledge base
(frameworks, best practices, methodologies, expert advice and a topic index
built from podcast transcripts) to MCP clients over stdio.

Run "lenny-knowledge serve" from an MCP client configuration. The topics,
query, export and scan commands work against the same data without a client.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./lenny-knowledge.yaml or ~/.config/lenny-knowledge/lenny-knowledge.yaml)")
	flags.String("index-path", "index", "directory of per-topic reference files")
	flags.String("output-path", "knowledge", "directory for export and scan output")
	flags.String("log-level", "info", "log level: debug, info, warn, error")

	viper.SetDefault(keyIndexPath, "index")
	viper.SetDefault(keyTranscriptsPath, "episodes")
	viper.SetDefault(keyOutputPath, "knowledge")
	viper.SetDefault(keyLogLevel, "info")
	viper.SetDefault(keyMinMentions, 2)

	_ = viper.BindPFlag(keyIndexPath, flags.Lookup("index-path"))
	_ = viper.BindPFlag(keyOutputPath, flags.Lookup("output-path"))
	_ = viper.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lenny-knowledge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lenny-knowledge"))
		}
	}

	viper.SetEnvPrefix("LENNY")
	viper.AutomaticEnv()

	// stdout carries the MCP protocol, so diagnostics go to stderr.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// serverConfig reads the query server settings from viper.
func serverConfig() (types.ServerConfig, error) {
	var cfg types.ServerConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds a text logger on w at the named level.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: use debug, info, warn or error", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// app is the wiring shared by every command that reads the knowledge base.
type app struct {
	cfg        types.ServerConfig
	logger     *slog.Logger
	store      *knowledge.Store
	dispatcher *query.Dispatcher
}

func newApp() (*app, error) {
	cfg, err := serverConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}
	store, err := knowledge.NewStore(topicindex.NewLoader(cfg.IndexPath))
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:        cfg,
		logger:     logger,
		store:      store,
		dispatcher: query.NewDispatcher(store, logger),
	}, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
