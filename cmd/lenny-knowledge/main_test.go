// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolArgs(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    map[string]any
		wantErr bool
	}{
		{"none", nil, map[string]any{}, false},
		{"single", []string{"name=RICE"}, map[string]any{"name": "RICE"}, false},
		{"value with equals", []string{"situation=a=b"}, map[string]any{"situation": "a=b"}, false},
		{"empty value", []string{"query="}, map[string]any{"query": ""}, false},
		{"last wins", []string{"name=a", "name=b"}, map[string]any{"name": "b"}, false},
		{"missing equals", []string{"name"}, nil, true},
		{"empty key", []string{"=x"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseToolArgs(tt.pairs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger("warn", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown k=v")

	debug, err := newLogger(" DEBUG ", &buf)
	require.NoError(t, err)
	assert.True(t, debug.Enabled(t.Context(), slog.LevelDebug))

	_, err = newLogger("loud", &buf)
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "topics", "query", "export", "scan", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestToolNames(t *testing.T) {
	assert.Equal(t,
		[]string{"get_framework", "get_best_practices", "get_methodology", "get_expert_advice", "list_topics"},
		toolNames())
}
