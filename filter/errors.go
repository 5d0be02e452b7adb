// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for filter operations.
var (
	// ErrExpressionCheck is returned when a filter fails syntax or type checking.
	ErrExpressionCheck = errors.New("filter expression check failed")

	// ErrEvaluation is returned when evaluating a filter fails.
	ErrEvaluation = errors.New("filter evaluation failed")

	// ErrInvalidResult is returned when a filter does not produce a bool.
	ErrInvalidResult = errors.New("filter returned invalid result type")
)

// Issue is one problem found in an expression.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// ErrDetails describes a rejected filter expression.
type ErrDetails struct {
	Source string  `json:"source,omitempty"`
	Errors []Issue `json:"errors,omitempty"`
	// Fields lists the message fields the expression mentions, in the
	// order of Fields.
	Fields []string `json:"fields,omitempty"`
}

// AsJSON renders the details as a single line of JSON. Operators in the
// source are not HTML escaped.
func (ed *ErrDetails) AsJSON() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ed); err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal JSON: %s"}`, err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

var fieldPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(Fields))
	for _, f := range Fields {
		m[f] = regexp.MustCompile(`\b` + f + `\b`)
	}
	return m
}()

// mentionedFields returns the message fields named in source.
func mentionedFields(source string) []string {
	var out []string
	for _, f := range Fields {
		if fieldPatterns[f].MatchString(source) {
			out = append(out, f)
		}
	}
	return out
}

func newDetails(source string, issues *cel.Issues) ErrDetails {
	ed := ErrDetails{Source: source, Fields: mentionedFields(source)}
	if issues == nil {
		return ed
	}
	for _, err := range issues.Errors() {
		ed.Errors = append(ed.Errors, Issue{
			Line: err.Location.Line(),
			Col:  err.Location.Column(),
			Msg:  err.Message,
		})
	}
	return ed
}

// ParseError is a syntax error in a filter expression.
type ParseError struct {
	ErrDetails
	cause error
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("filter %q does not parse: %s", pe.Source, pe.cause)
}

func (pe *ParseError) Unwrap() error { return pe.cause }

// CheckError is a filter expression that parses but cannot be used: it
// names an unknown field, mixes types, or does not produce a bool.
type CheckError struct {
	ErrDetails
	cause error
}

func (ce *CheckError) Error() string {
	return fmt.Sprintf("filter %q is not a valid message predicate: %s", ce.Source, ce.cause)
}

func (ce *CheckError) Unwrap() error { return ce.cause }

func newParseError(source string, issues *cel.Issues) error {
	return &ParseError{
		ErrDetails: newDetails(source, issues),
		cause:      fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}

func newCheckError(source string, issues *cel.Issues) error {
	return &CheckError{
		ErrDetails: newDetails(source, issues),
		cause:      fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}

func newResultTypeError(source string, got *cel.Type) error {
	return &CheckError{
		ErrDetails: newDetails(source, nil),
		cause:      fmt.Errorf("%w: expression returns %s, want bool", ErrExpressionCheck, got),
	}
}
