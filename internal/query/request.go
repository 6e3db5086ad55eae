// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query turns named operations with untyped arguments into typed
// requests and answers them from the knowledge store as markdown text.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Operation names the five supported lookups.
type Operation string

const (
	OpGetFramework     Operation = "get_framework"
	OpGetBestPractices Operation = "get_best_practices"
	OpGetMethodology   Operation = "get_methodology"
	OpGetExpertAdvice  Operation = "get_expert_advice"
	OpListTopics       Operation = "list_topics"
)

// Operations lists every operation in catalog order.
var Operations = []Operation{
	OpGetFramework,
	OpGetBestPractices,
	OpGetMethodology,
	OpGetExpertAdvice,
	OpListTopics,
}

// Request is a validated operation. The set of implementations is closed.
type Request interface {
	Operation() Operation
	isRequest()
}

// GetFramework searches frameworks by name, description or application.
type GetFramework struct{ Name string }

// GetBestPractices looks up practices for a topic.
type GetBestPractices struct{ Topic string }

// GetMethodology filters methodologies; an empty Query returns all.
type GetMethodology struct{ Query string }

// GetExpertAdvice picks canned advice for a situation.
type GetExpertAdvice struct{ Situation string }

// ListTopics lists the topic index.
type ListTopics struct{}

func (GetFramework) Operation() Operation     { return OpGetFramework }
func (GetBestPractices) Operation() Operation { return OpGetBestPractices }
func (GetMethodology) Operation() Operation   { return OpGetMethodology }
func (GetExpertAdvice) Operation() Operation  { return OpGetExpertAdvice }
func (ListTopics) Operation() Operation       { return OpListTopics }

func (GetFramework) isRequest()     {}
func (GetBestPractices) isRequest() {}
func (GetMethodology) isRequest()   {}
func (GetExpertAdvice) isRequest()  {}
func (ListTopics) isRequest()       {}

// ValidationError reports a missing or malformed argument. The operation is
// not attempted.
type ValidationError struct {
	Operation Operation
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Operation, e.Field, e.Reason)
}

// UnsupportedOperationError reports an unknown operation name.
type UnsupportedOperationError struct {
	Name string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsUnsupported reports whether err is an *UnsupportedOperationError.
func IsUnsupported(err error) bool {
	var ue *UnsupportedOperationError
	return errors.As(err, &ue)
}

// Decode validates args for the named operation and returns the typed
// request. Required string arguments must be present and not blank after
// coercion; scalar values such as numbers are accepted and stringified.
func Decode(name string, args map[string]any) (Request, error) {
	op := Operation(name)
	switch op {
	case OpGetFramework:
		v, err := requiredString(op, args, "name")
		if err != nil {
			return nil, err
		}
		return GetFramework{Name: v}, nil
	case OpGetBestPractices:
		v, err := requiredString(op, args, "topic")
		if err != nil {
			return nil, err
		}
		return GetBestPractices{Topic: v}, nil
	case OpGetMethodology:
		v, err := optionalString(op, args, "query")
		if err != nil {
			return nil, err
		}
		return GetMethodology{Query: v}, nil
	case OpGetExpertAdvice:
		v, err := requiredString(op, args, "situation")
		if err != nil {
			return nil, err
		}
		return GetExpertAdvice{Situation: v}, nil
	case OpListTopics:
		return ListTopics{}, nil
	default:
		return nil, &UnsupportedOperationError{Name: name}
	}
}

func optionalString(op Operation, args map[string]any, field string) (string, error) {
	raw, ok := args[field]
	if !ok || raw == nil {
		return "", nil
	}
	v, err := cast.ToStringE(raw)
	if err != nil {
		return "", &ValidationError{Operation: op, Field: field, Reason: "must be a string"}
	}
	return v, nil
}

func requiredString(op Operation, args map[string]any, field string) (string, error) {
	v, err := optionalString(op, args, field)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(v) == "" {
		return "", &ValidationError{Operation: op, Field: field, Reason: "is required"}
	}
	return v, nil
}
