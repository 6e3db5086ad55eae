// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/lenny-knowledge/internal/knowledge"
	"github.com/pdiddy/lenny-knowledge/internal/topicindex"
)

// --- test helpers ---

type countingLoader struct {
	calls int
	index topicindex.Index
	err   error
}

func (l *countingLoader) Load() (topicindex.Index, error) {
	l.calls++
	return l.index, l.err
}

func testDispatcher(t *testing.T, loader *countingLoader) *Dispatcher {
	t.Helper()
	if loader == nil {
		loader = &countingLoader{}
	}
	store, err := knowledge.NewStore(loader)
	require.NoError(t, err)
	return NewDispatcher(store, nil)
}

// --- decode tests ---

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		args    map[string]any
		want    Request
		wantErr string
	}{
		{"framework", "get_framework", map[string]any{"name": "RICE"}, GetFramework{Name: "RICE"}, ""},
		{"framework missing name", "get_framework", map[string]any{}, nil, "get_framework: name is required"},
		{"framework nil args", "get_framework", nil, nil, "name is required"},
		{"framework blank name", "get_framework", map[string]any{"name": "   "}, nil, "name is required"},
		{"framework null name", "get_framework", map[string]any{"name": nil}, nil, "name is required"},
		{"framework object name", "get_framework", map[string]any{"name": map[string]any{"x": 1}}, nil, "name must be a string"},
		{"framework numeric name", "get_framework", map[string]any{"name": 42}, GetFramework{Name: "42"}, ""},
		{"best practices", "get_best_practices", map[string]any{"topic": "User Research"}, GetBestPractices{Topic: "User Research"}, ""},
		{"best practices missing topic", "get_best_practices", map[string]any{}, nil, "topic is required"},
		{"methodology without query", "get_methodology", map[string]any{}, GetMethodology{}, ""},
		{"methodology with query", "get_methodology", map[string]any{"query": "Dual"}, GetMethodology{Query: "Dual"}, ""},
		{"methodology bad query", "get_methodology", map[string]any{"query": []any{"a"}}, nil, "query must be a string"},
		{"advice", "get_expert_advice", map[string]any{"situation": "pricing"}, GetExpertAdvice{Situation: "pricing"}, ""},
		{"advice missing situation", "get_expert_advice", map[string]any{"other": "x"}, nil, "situation is required"},
		{"list topics ignores args", "list_topics", map[string]any{"extra": true}, ListTopics{}, ""},
		{"unknown", "get_mental_models", nil, nil, "unknown tool: get_mental_models"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.op, tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, Operation(tt.op), got.Operation())
		})
	}
}

func TestDecodeErrorTypes(t *testing.T) {
	_, err := Decode("get_framework", map[string]any{})
	assert.True(t, IsValidation(err))
	assert.False(t, IsUnsupported(err))

	_, err = Decode("nope", nil)
	assert.True(t, IsUnsupported(err))
	assert.False(t, IsValidation(err))
}

func TestOperationsCoverDecode(t *testing.T) {
	for _, op := range Operations {
		_, err := Decode(string(op), map[string]any{"name": "x", "topic": "x", "situation": "x"})
		assert.NoError(t, err, string(op))
	}
}

// --- dispatch tests ---

func TestGetFramework(t *testing.T) {
	d := testDispatcher(t, nil)

	res := d.Call("get_framework", map[string]any{"name": "RICE"})
	require.False(t, res.IsError)
	assert.Equal(t, 1, strings.Count(res.Text, "**Application:**"))
	assert.True(t, strings.HasPrefix(res.Text, "# RICE Prioritization\n"))
	assert.Contains(t, res.Text, "5. Calculate RICE Score")

	miss := d.Call("get_framework", map[string]any{"name": "nonexistent-xyz"})
	assert.False(t, miss.IsError)
	assert.Contains(t, miss.Text, `No framework found for "nonexistent-xyz"`)
	assert.Contains(t, miss.Text, "RICE Prioritization")
}

func TestGetFrameworkMissingArgument(t *testing.T) {
	d := testDispatcher(t, nil)

	res := d.Call("get_framework", map[string]any{})
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: get_framework: name is required", res.Text)
}

func TestGetBestPracticesNormalization(t *testing.T) {
	d := testDispatcher(t, nil)

	spaced := d.Call("get_best_practices", map[string]any{"topic": "User Research"})
	kebab := d.Call("get_best_practices", map[string]any{"topic": "user-research"})

	assert.False(t, spaced.IsError)
	assert.Equal(t, spaced, kebab)
	assert.True(t, strings.HasPrefix(spaced.Text, "# Best Practices: User Research\n"))

	miss := d.Call("get_best_practices", map[string]any{"topic": "growth-strategy"})
	assert.False(t, miss.IsError)
	assert.Equal(t,
		`No best practices found for "growth-strategy". Available topics: prioritization, product-market-fit, user-research`,
		miss.Text)
}

func TestGetMethodology(t *testing.T) {
	d := testDispatcher(t, nil)

	all := d.Dispatch(GetMethodology{})
	assert.False(t, all.IsError)
	first := strings.Index(all.Text, "## Continuous Discovery")
	second := strings.Index(all.Text, "## Dual-Track Agile")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)

	dual := d.Dispatch(GetMethodology{Query: "Dual"})
	assert.Contains(t, dual.Text, "## Dual-Track Agile")
	assert.NotContains(t, dual.Text, "Continuous Discovery")
	assert.Equal(t, 1, strings.Count(dual.Text, "\n## "))

	miss := d.Dispatch(GetMethodology{Query: "waterfall"})
	assert.False(t, miss.IsError)
	assert.Contains(t, miss.Text, `No methodology found for "waterfall"`)
}

func TestGetExpertAdvice(t *testing.T) {
	d := testDispatcher(t, nil)

	pricing := d.Call("get_expert_advice", map[string]any{"situation": "We need to decide on pricing"})
	assert.False(t, pricing.IsError)
	assert.True(t, strings.HasPrefix(pricing.Text, "**Pricing Strategy Advice"))

	hiring := d.Call("get_expert_advice", map[string]any{"situation": "How to hire first PM"})
	assert.True(t, strings.HasPrefix(hiring.Text, "**Hiring Best Practices"))

	fallback := d.Call("get_expert_advice", map[string]any{"situation": "asdf"})
	assert.False(t, fallback.IsError)
	assert.True(t, strings.HasPrefix(fallback.Text, "I can provide expert advice"))
}

func TestListTopicsLoadsOnce(t *testing.T) {
	loader := &countingLoader{index: topicindex.Index{
		"user-research": {"bob-moesta", "teresa-torres"},
		"pricing":       {"patrick-campbell"},
	}}
	d := testDispatcher(t, loader)

	first := d.Call("list_topics", nil)
	second := d.Call("list_topics", nil)

	assert.Equal(t, 1, loader.calls)
	assert.Equal(t, first, second)
	assert.False(t, first.IsError)
	assert.Contains(t, first.Text, "# Available Knowledge Topics (2)")
	assert.Less(t, strings.Index(first.Text, "**pricing**"), strings.Index(first.Text, "**user-research**"))
	assert.Contains(t, first.Text, "- **user-research** (2 episodes)")
}

func TestListTopicsDirectoryError(t *testing.T) {
	loader := &countingLoader{err: errors.New("reading topic index directory index: permission denied")}
	d := testDispatcher(t, loader)

	res := d.Dispatch(ListTopics{})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, "permission denied")

	// Other operations do not depend on the topic index.
	assert.False(t, d.Dispatch(GetFramework{Name: "RICE"}).IsError)
}

func TestListTopicsPartialLoad(t *testing.T) {
	loader := &countingLoader{
		index: topicindex.Index{"pricing": {"a"}},
		err:   errors.Join(&topicindex.FileError{Path: "index/broken.md", Err: os.ErrPermission}),
	}
	d := testDispatcher(t, loader)

	res := d.Dispatch(ListTopics{})
	assert.False(t, res.IsError)
	assert.Contains(t, res.Text, "- **pricing** (1 episode)")
	assert.Contains(t, res.Text, "- index/broken.md")
}

func TestCallUnknownOperation(t *testing.T) {
	d := testDispatcher(t, nil)

	res := d.Call("get_mental_models", map[string]any{})
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: unknown tool: get_mental_models", res.Text)
}

func TestDispatchLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store, err := knowledge.NewStore(&countingLoader{})
	require.NoError(t, err)
	d := NewDispatcher(store, logger)

	d.Call("get_methodology", nil)
	d.Call("get_framework", nil)

	out := buf.String()
	assert.Contains(t, out, "dispatched request")
	assert.Contains(t, out, "tool=get_methodology")
	assert.Contains(t, out, "duration=")
	assert.Contains(t, out, "rejected request")
}
