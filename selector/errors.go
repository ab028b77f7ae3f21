// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package selector

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for selector operations.
var (
	// ErrInvalidSelector is returned when a selector fails syntax or type checking.
	ErrInvalidSelector = errors.New("invalid node selector")

	// ErrEvaluation is returned when a selector cannot be evaluated for a node.
	ErrEvaluation = errors.New("node selector evaluation failed")

	// ErrNotBoolean is returned when a selector does not produce a bool.
	ErrNotBoolean = errors.New("node selector did not return a bool")
)

// Issue is one problem found in a selector, with its source position.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// CompileError reports why a selector could not be compiled.
type CompileError struct {
	// Stage is "parse" or "check".
	Stage  string  `json:"stage"`
	Source string  `json:"source"`
	Issues []Issue `json:"issues,omitempty"`
	cause  error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("node selector %s error in %q: %s", e.Stage, e.Source, e.cause)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.cause
}

// AsJSON returns the error details as a JSON string.
func (e *CompileError) AsJSON() string {
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal JSON: %s"}`, err)
	}
	return string(b)
}

func newCompileError(stage, source string, issues *cel.Issues) error {
	list := make([]Issue, 0, len(issues.Errors()))
	for _, iss := range issues.Errors() {
		list = append(list, Issue{
			Line: iss.Location.Line(),
			Col:  iss.Location.Column(),
			Msg:  iss.Message,
		})
	}
	return &CompileError{
		Stage:  stage,
		Source: source,
		Issues: list,
		cause:  fmt.Errorf("%w: %w", ErrInvalidSelector, issues.Err()),
	}
}
