// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pdiddy/lenny-knowledge/internal/format"
	"github.com/pdiddy/lenny-knowledge/internal/topicindex"
	"github.com/pdiddy/lenny-knowledge/pkg/types"
)

// Knowledge is the read side of the knowledge store used by the dispatcher.
type Knowledge interface {
	Frameworks(query string) []types.Framework
	FrameworkNames() []string
	BestPractices(topic string) []types.BestPractice
	PracticeTopics() []string
	Methodologies(query string) []types.Methodology
	MethodologyNames() []string
	Advice(situation string) (string, bool)
	ListTopics() ([]types.TopicSummary, error)
}

// Result is the rendered answer to a request. IsError marks failures;
// an empty match is not a failure.
type Result struct {
	Text    string
	IsError bool
}

func textResult(text string) Result { return Result{Text: text} }

func errorResult(err error) Result {
	return Result{Text: fmt.Sprintf("Error: %v", err), IsError: true}
}

// Dispatcher answers requests from a Knowledge store.
type Dispatcher struct {
	kb     Knowledge
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher. A nil logger discards log output.
func NewDispatcher(kb Knowledge, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{kb: kb, logger: logger}
}

// Call decodes and dispatches a named operation. Validation and unknown
// operation failures come back as flagged results.
func (d *Dispatcher) Call(name string, args map[string]any) Result {
	req, err := Decode(name, args)
	if err != nil {
		d.logger.Warn("rejected request", "tool", name, "error", err)
		return errorResult(err)
	}
	return d.Dispatch(req)
}

// Dispatch answers a validated request.
func (d *Dispatcher) Dispatch(req Request) Result {
	begin := time.Now()
	var res Result

	switch r := req.(type) {
	case GetFramework:
		res = d.getFramework(r)
	case GetBestPractices:
		res = d.getBestPractices(r)
	case GetMethodology:
		res = d.getMethodology(r)
	case GetExpertAdvice:
		res = d.getExpertAdvice(r)
	case ListTopics:
		res = d.listTopics()
	default:
		res = errorResult(&UnsupportedOperationError{Name: fmt.Sprintf("%T", req)})
	}

	d.logger.Debug("dispatched request",
		"tool", string(req.Operation()),
		"is_error", res.IsError,
		"duration", time.Since(begin),
	)
	return res
}

func (d *Dispatcher) getFramework(r GetFramework) Result {
	frameworks := d.kb.Frameworks(r.Name)
	if len(frameworks) == 0 {
		return textResult(format.FrameworkNotFound(r.Name, d.kb.FrameworkNames()))
	}
	return textResult(format.Frameworks(frameworks))
}

func (d *Dispatcher) getBestPractices(r GetBestPractices) Result {
	practices := d.kb.BestPractices(r.Topic)
	if len(practices) == 0 {
		return textResult(format.BestPracticesNotFound(r.Topic, d.kb.PracticeTopics()))
	}
	return textResult(format.BestPractices(practices))
}

func (d *Dispatcher) getMethodology(r GetMethodology) Result {
	methods := d.kb.Methodologies(r.Query)
	if len(methods) == 0 {
		return textResult(format.MethodologyNotFound(r.Query, d.kb.MethodologyNames()))
	}
	return textResult(format.Methodologies(methods))
}

func (d *Dispatcher) getExpertAdvice(r GetExpertAdvice) Result {
	text, _ := d.kb.Advice(r.Situation)
	return textResult(text)
}

// listTopics fails only when nothing could be read. Per-file failures are
// reported under the topics that did load.
func (d *Dispatcher) listTopics() Result {
	topics, err := d.kb.ListTopics()
	if err == nil {
		return textResult(format.Topics(topics, nil))
	}

	fileErrs := topicindex.FileErrors(err)
	if len(fileErrs) == 0 {
		d.logger.Error("topic index unavailable", "error", err)
		return errorResult(err)
	}

	skipped := make([]string, len(fileErrs))
	for i, fe := range fileErrs {
		skipped[i] = fe.Path
		d.logger.Warn("skipped topic file", "path", fe.Path, "error", fe.Err)
	}
	return textResult(format.Topics(topics, skipped))
}
