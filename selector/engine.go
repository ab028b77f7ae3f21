// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package selector

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

const (
	// NodeVariable is the name under which node attributes are exposed.
	NodeVariable = "node"

	// DefaultMaxLength is the maximum accepted selector length.
	DefaultMaxLength = 2048

	// DefaultCostLimit bounds the runtime cost of a single evaluation.
	DefaultCostLimit = 100000
)

// Engine compiles and caches node selectors. It is safe for concurrent use.
type Engine struct {
	once      sync.Once
	env       *cel.Env
	envErr    error
	maxLength int
	costLimit uint64
	compiled  sync.Map // source -> *Selector
}

// Selector is a compiled node selector.
type Selector struct {
	source  string
	program cel.Program
}

// Source returns the original expression.
func (s *Selector) Source() string {
	return s.source
}

// NewEngine creates an engine with default limits.
func NewEngine() *Engine {
	return &Engine{
		maxLength: DefaultMaxLength,
		costLimit: DefaultCostLimit,
	}
}

// WithMaxLength sets the maximum accepted selector length.
func (e *Engine) WithMaxLength(n int) *Engine {
	e.maxLength = n
	return e
}

// WithCostLimit sets the runtime cost limit for evaluation.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) celEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.envErr = cel.NewEnv(
			cel.Variable(NodeVariable, cel.MapType(cel.StringType, cel.DynType)),
		)
	})
	return e.env, e.envErr
}

// Check validates a selector without keeping a program.
func (e *Engine) Check(expr string) error {
	_, err := e.compile(expr)
	return err
}

// Compile returns the compiled selector for expr, reusing an earlier
// compilation of the same source.
func (e *Engine) Compile(expr string) (*Selector, error) {
	if cached, ok := e.compiled.Load(expr); ok {
		return cached.(*Selector), nil
	}
	sel, err := e.compile(expr)
	if err != nil {
		return nil, err
	}
	actual, _ := e.compiled.LoadOrStore(expr, sel)
	return actual.(*Selector), nil
}

func (e *Engine) compile(expr string) (*Selector, error) {
	if len(expr) > e.maxLength {
		return nil, fmt.Errorf("%w: length %d exceeds maximum of %d", ErrInvalidSelector, len(expr), e.maxLength)
	}

	env, err := e.celEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsed, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, newCompileError("parse", expr, issues)
	}

	checked, issues := env.Check(parsed)
	if issues.Err() != nil {
		return nil, newCompileError("check", expr, issues)
	}
	if !checked.OutputType().IsExactType(cel.BoolType) && !checked.OutputType().IsExactType(cel.DynType) {
		return nil, fmt.Errorf("%w: %q has type %s", ErrNotBoolean, expr, checked.OutputType())
	}

	program, err := env.Program(checked, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create program for %q: %w", expr, err)
	}

	return &Selector{source: expr, program: program}, nil
}

// Matches evaluates the selector against the given node attributes.
func (s *Selector) Matches(attrs map[string]any) (bool, error) {
	out, _, err := s.program.Eval(map[string]any{NodeVariable: attrs})
	if err != nil {
		return false, fmt.Errorf("%w: %q: %s", ErrEvaluation, s.source, err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T", ErrNotBoolean, s.source, out.Value())
	}
	return matched, nil
}

// Match compiles expr (or reuses the cached program) and evaluates it.
func (e *Engine) Match(expr string, attrs map[string]any) (bool, error) {
	sel, err := e.Compile(expr)
	if err != nil {
		return false, err
	}
	return sel.Matches(attrs)
}
