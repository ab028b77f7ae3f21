// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tool

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=registry.go -destination=mocks/mock_registry.go -package=mocks Registry

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"github.com/stacklok/coverity-env/env"
	"github.com/stacklok/coverity-env/selector"
)

// PathContributionKey prepends the tool's bin directory to PATH.
const PathContributionKey = env.PathKey + "+COVERITY"

// binDir is the directory under an installation home holding the executables.
const binDir = "bin"

var windowsDrive = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// Location overrides the home of an installation on particular nodes. Node
// matches a node name exactly (case-insensitive); Selector is a CEL
// expression over the node's attributes. Node takes precedence when both
// are set.
type Location struct {
	Node     string `json:"node,omitempty" yaml:"node,omitempty"`
	Selector string `json:"selector,omitempty" yaml:"selector,omitempty"`
	Home     string `json:"home" yaml:"home"`
}

// Installation is a named Coverity analysis toolset.
type Installation struct {
	Name      string     `json:"name" yaml:"name"`
	Home      string     `json:"home" yaml:"home"`
	Locations []Location `json:"locations,omitempty" yaml:"locations,omitempty"`

	// OS is set by Translate to the node the home was adapted for.
	OS OS `json:"-" yaml:"-"`
}

// Translated reports whether the installation has been adapted for a node.
func (i Installation) Translated() bool {
	return i.OS != ""
}

// Registry resolves and adapts tool installations.
type Registry interface {
	// Installations lists the configured installations in configuration order.
	Installations() []Installation

	// Translate adapts inst to node, expanding variables from baseEnv.
	Translate(inst Installation, node *Node, baseEnv env.Vars) (Installation, error)

	// Contributions returns the environment entries a translated
	// installation adds to a build.
	Contributions(inst Installation) env.Vars
}

// Find returns the first installation whose name equals name, ignoring case.
func Find(installations []Installation, name string) (Installation, bool) {
	for _, inst := range installations {
		if strings.EqualFold(inst.Name, name) {
			return inst, true
		}
	}
	return Installation{}, false
}

// Names lists installation names in order.
func Names(installations []Installation) []string {
	names := make([]string, 0, len(installations))
	for _, inst := range installations {
		names = append(names, inst.Name)
	}
	return names
}

// StaticRegistry serves a fixed set of installations.
type StaticRegistry struct {
	installations []Installation
	selectors     *selector.Engine
	logger        *slog.Logger
}

// Option configures a StaticRegistry.
type Option func(*StaticRegistry)

// WithLogger sets the logger used for translation details.
func WithLogger(l *slog.Logger) Option {
	return func(r *StaticRegistry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSelectorEngine shares a selector engine between registries.
func WithSelectorEngine(e *selector.Engine) Option {
	return func(r *StaticRegistry) {
		if e != nil {
			r.selectors = e
		}
	}
}

// NewStaticRegistry validates installations and returns a registry over a
// copy of them. Names must be non-empty and unique ignoring case, every
// location needs a home and either a node or a selector, and selectors must
// compile.
func NewStaticRegistry(installations []Installation, opts ...Option) (*StaticRegistry, error) {
	r := &StaticRegistry{
		selectors: selector.NewEngine(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	seen := make(map[string]bool, len(installations))
	var errs []error
	for i, inst := range installations {
		if strings.TrimSpace(inst.Name) == "" {
			errs = append(errs, fmt.Errorf("installation %d: name cannot be empty", i))
			continue
		}
		key := strings.ToLower(inst.Name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("installation %q: duplicate name", inst.Name))
		}
		seen[key] = true
		for j, loc := range inst.Locations {
			if err := r.validateLocation(loc); err != nil {
				errs = append(errs, fmt.Errorf("installation %q location %d: %w", inst.Name, j, err))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	r.installations = make([]Installation, len(installations))
	for i, inst := range installations {
		inst.Locations = append([]Location(nil), inst.Locations...)
		r.installations[i] = inst
	}
	return r, nil
}

func (r *StaticRegistry) validateLocation(loc Location) error {
	if strings.TrimSpace(loc.Home) == "" {
		return errors.New("home cannot be empty")
	}
	if loc.Node == "" && loc.Selector == "" {
		return errors.New("either node or selector is required")
	}
	if loc.Selector != "" {
		if _, err := r.selectors.Compile(loc.Selector); err != nil {
			return err
		}
	}
	return nil
}

// Installations implements Registry.
func (r *StaticRegistry) Installations() []Installation {
	out := make([]Installation, len(r.installations))
	copy(out, r.installations)
	return out
}

// Translate implements Registry. It selects the home for node, expands
// $VAR and ${VAR} references against baseEnv and rewrites separators for
// the node's OS.
func (r *StaticRegistry) Translate(inst Installation, node *Node, baseEnv env.Vars) (Installation, error) {
	if node == nil {
		return Installation{}, errors.New("no node to translate for")
	}
	nodeOS := node.os()
	if _, err := ParseOS(string(nodeOS)); err != nil {
		return Installation{}, err
	}

	home, source, err := r.selectHome(inst, node)
	if err != nil {
		return Installation{}, err
	}

	// Backslashes are escapes to the expander; Windows paths go through it
	// with forward slashes and are converted back by adaptPath.
	if nodeOS == OSWindows || windowsDrive.MatchString(home) {
		home = strings.ReplaceAll(home, `\`, "/")
	}

	expanded, err := shell.Expand(home, func(name string) string {
		return baseEnv[name]
	})
	if err != nil {
		return Installation{}, fmt.Errorf("expanding home %q: %w", home, err)
	}

	translated, err := adaptPath(expanded, nodeOS)
	if err != nil {
		return Installation{}, err
	}

	r.logger.Debug("translated tool installation",
		"tool", inst.Name, "node", node.Name, "os", string(nodeOS), "source", source, "home", translated)

	return Installation{Name: inst.Name, Home: translated, OS: nodeOS}, nil
}

func (r *StaticRegistry) selectHome(inst Installation, node *Node) (home, source string, err error) {
	for _, loc := range inst.Locations {
		if loc.Node != "" && strings.EqualFold(loc.Node, node.Name) {
			return loc.Home, "node:" + loc.Node, nil
		}
	}
	for _, loc := range inst.Locations {
		if loc.Selector == "" {
			continue
		}
		matched, err := r.selectors.Match(loc.Selector, node.attributes())
		if err != nil {
			return "", "", err
		}
		if matched {
			return loc.Home, "selector:" + loc.Selector, nil
		}
	}
	return inst.Home, "default", nil
}

// adaptPath rewrites p for the node's OS.
func adaptPath(p string, nodeOS OS) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", errors.New("installation home is empty")
	}

	switch nodeOS {
	case OSWindows:
		p = strings.ReplaceAll(p, "/", `\`)
		if len(p) > 3 || !windowsDrive.MatchString(p) {
			p = strings.TrimRight(p, `\`)
		}
	default:
		if windowsDrive.MatchString(p) {
			return "", fmt.Errorf("windows path %q cannot be used on a unix node", p)
		}
		if p != "/" {
			p = strings.TrimRight(p, "/")
		}
	}
	if p == "" {
		return "", errors.New("installation home is empty")
	}
	return p, nil
}

// Contributions implements Registry. An installation with an empty home
// contributes nothing.
func (r *StaticRegistry) Contributions(inst Installation) env.Vars {
	vars := env.Vars{}
	if inst.Home == "" {
		return vars
	}
	nodeOS := inst.OS
	if nodeOS == "" {
		nodeOS = OSUnix
	}
	sep := nodeOS.PathSeparator()
	home := inst.Home
	if !strings.HasSuffix(home, sep) {
		home += sep
	}
	vars.Set(PathContributionKey, home+binDir)
	return vars
}
