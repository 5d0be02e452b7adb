// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/stacklok/toolhive-scriptlog/severity"
	"github.com/stacklok/toolhive-scriptlog/side"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length of an expression.
	DefaultMaxExpressionLength = 10000

	// DefaultCostLimit is the runtime cost limit of one evaluation.
	DefaultCostLimit = 1000000
)

// Input is the message data a filter is evaluated against.
type Input struct {
	Severity severity.Level
	Message  string
	Lines    []string
	Location string
	Side     side.Side
	Failure  bool
}

func (in Input) activation() map[string]any {
	lines := in.Lines
	if lines == nil {
		lines = []string{}
	}
	return map[string]any{
		"severity": in.Severity.String(),
		"level":    int64(in.Severity),
		"message":  in.Message,
		"lines":    lines,
		"location": in.Location,
		"side":     in.Side.String(),
		"failure":  in.Failure,
	}
}

// envCache holds the lazily created, shared CEL environment.
var envCache struct {
	once sync.Once
	env  *cel.Env
	err  error
}

// Fields are the message fields an expression can refer to.
var Fields = []string{"severity", "level", "message", "lines", "location", "side", "failure"}

var fieldTypes = map[string]*cel.Type{
	"severity": cel.StringType,
	"level":    cel.IntType,
	"message":  cel.StringType,
	"lines":    cel.ListType(cel.StringType),
	"location": cel.StringType,
	"side":     cel.StringType,
	"failure":  cel.BoolType,
}

func getEnv() (*cel.Env, error) {
	envCache.once.Do(func() {
		opts := make([]cel.EnvOption, 0, len(Fields))
		for _, f := range Fields {
			opts = append(opts, cel.Variable(f, fieldTypes[f]))
		}
		envCache.env, envCache.err = cel.NewEnv(opts...)
	})
	return envCache.env, envCache.err
}

// Filter is a compiled expression. It is safe for concurrent use from
// multiple goroutines.
type Filter struct {
	source  string
	program cel.Program
}

// Compile parses and type checks expr and prepares it for evaluation.
//
// Returns an error if the expression exceeds the maximum length, a
// ParseError for syntax errors, or a CheckError for type errors and
// non-bool results.
func Compile(expr string) (*Filter, error) {
	return CompileWithLimits(expr, DefaultMaxExpressionLength, DefaultCostLimit)
}

// CompileWithLimits is Compile with explicit length and cost limits.
func CompileWithLimits(expr string, maxLen int, costLimit uint64) (*Filter, error) {
	if len(expr) > maxLen {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), maxLen)
	}

	env, err := getEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsedAst, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, newParseError(expr, issues)
	}

	checkedAst, issues := env.Check(parsedAst)
	if issues.Err() != nil {
		return nil, newCheckError(expr, issues)
	}
	if !checkedAst.OutputType().IsExactType(cel.BoolType) {
		return nil, newResultTypeError(expr, checkedAst.OutputType())
	}

	program, err := env.Program(checkedAst, cel.CostLimit(costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &Filter{source: expr, program: program}, nil
}

// Source returns the original expression.
func (f *Filter) Source() string {
	return f.source
}

// Keep evaluates the filter for in.
func (f *Filter) Keep(in Input) (bool, error) {
	out, _, err := f.program.Eval(in.activation())
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}
	keep, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, out.Value())
	}
	return keep, nil
}
