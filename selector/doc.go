// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package selector evaluates CEL node selectors.

Tool installations can carry node-specific locations. A location is chosen
either by exact node name or by a selector evaluated against the node's
attributes, exposed as the map variable "node":

	engine := selector.NewEngine()
	ok, err := engine.Match(`node.os == "windows" && "x64" in node.labels`,
	    map[string]any{"name": "win-1", "os": "windows", "labels": []string{"x64"}})

Compiled selectors are cached per source string. Compilation errors are
returned as *CompileError with line and column details. The engine limits
expression length and evaluation cost.
*/
package selector
