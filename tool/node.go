// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"fmt"
	"strings"
)

// OS identifies the path conventions of an execution node.
type OS string

const (
	// OSUnix uses '/' between path elements and ':' between PATH entries.
	OSUnix OS = "unix"
	// OSWindows uses '\' between path elements and ';' between PATH entries.
	OSWindows OS = "windows"
)

// ParseOS accepts unix, linux, darwin or windows (case-insensitive). An empty
// string means unix.
func ParseOS(s string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unix", "linux", "darwin", "freebsd":
		return OSUnix, nil
	case "windows":
		return OSWindows, nil
	default:
		return "", fmt.Errorf("unsupported node OS %q", s)
	}
}

// PathSeparator returns the separator between path elements.
func (o OS) PathSeparator() string {
	if o == OSWindows {
		return `\`
	}
	return "/"
}

// ListSeparator returns the separator between PATH entries.
func (o OS) ListSeparator() string {
	if o == OSWindows {
		return ";"
	}
	return ":"
}

// Node is the execution target a tool installation is translated for.
type Node struct {
	Name   string
	OS     OS
	Labels []string
}

// NewNode builds a Node, normalising os through ParseOS.
func NewNode(name, os string, labels ...string) (*Node, error) {
	parsed, err := ParseOS(os)
	if err != nil {
		return nil, err
	}
	return &Node{Name: name, OS: parsed, Labels: append([]string(nil), labels...)}, nil
}

// attributes exposes the node to selector expressions.
func (n *Node) attributes() map[string]any {
	labels := n.Labels
	if labels == nil {
		labels = []string{}
	}
	return map[string]any{
		"name":   n.Name,
		"os":     string(n.os()),
		"labels": labels,
	}
}

func (n *Node) os() OS {
	if n.OS == "" {
		return OSUnix
	}
	return n.OS
}
