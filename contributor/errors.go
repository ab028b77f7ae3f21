// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package contributor

import (
	"errors"
	"fmt"
)

// Sentinel errors for environment computation. All of them abort build
// setup; none is retried.
var (
	// ErrToolNotFound is returned when the selected tool is not configured.
	ErrToolNotFound = errors.New("coverity tools installation not found")

	// ErrNodeUnavailable is returned when there is no node to translate for.
	ErrNodeUnavailable = errors.New("execution node unavailable")

	// ErrTranslation is returned when an installation cannot be adapted to a node.
	ErrTranslation = errors.New("coverity tools installation translation failed")
)

// ToolNotFoundError reports a tool name with no matching installation.
type ToolNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("unable to find Coverity tools installation: [%s]. Please configure one for this instance", e.Name)
}

// Is matches ErrToolNotFound.
func (e *ToolNotFoundError) Is(target error) bool {
	return target == ErrToolNotFound
}

// NodeUnavailableError reports that the execution node could not be determined.
type NodeUnavailableError struct {
	Tool string
}

// Error implements the error interface.
func (e *NodeUnavailableError) Error() string {
	return fmt.Sprintf("cannot get Coverity tools installation [%s]: execution node unavailable", e.Tool)
}

// Is matches ErrNodeUnavailable.
func (e *NodeUnavailableError) Is(target error) bool {
	return target == ErrNodeUnavailable
}

// TranslationError reports why an installation could not be adapted to a node.
type TranslationError struct {
	Tool string
	Node string
	Err  error
}

// Error implements the error interface.
func (e *TranslationError) Error() string {
	return fmt.Sprintf("cannot translate Coverity tools installation [%s] for node %q: %v", e.Tool, e.Node, e.Err)
}

// Is matches ErrTranslation.
func (e *TranslationError) Is(target error) bool {
	return target == ErrTranslation
}

// Unwrap returns the underlying error.
func (e *TranslationError) Unwrap() error {
	return e.Err
}
