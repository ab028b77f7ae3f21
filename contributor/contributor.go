// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package contributor

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/stacklok/coverity-env/connection"
	"github.com/stacklok/coverity-env/env"
	"github.com/stacklok/coverity-env/tool"
)

// Contributor computes the environment a Coverity build wrapper adds to a
// build. It holds no mutable state and is safe for concurrent use as long
// as the registries are.
type Contributor struct {
	tools    tool.Registry
	profiles connection.Registry
	logger   *slog.Logger
	metrics  *metrics
}

// Option configures a Contributor.
type Option func(*Contributor)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Contributor) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics registers coverity_env_computations_total and
// coverity_env_connection_lookups_total with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Contributor) {
		if reg != nil {
			c.metrics = newMetrics(reg)
		}
	}
}

// New returns a Contributor over the given registries. profiles may be nil,
// in which case no connection variables are ever added. A nil tools
// registry has no installations, so every Compute fails with
// ToolNotFoundError.
func New(tools tool.Registry, profiles connection.Registry, opts ...Option) *Contributor {
	c := &Contributor{
		tools:    tools,
		profiles: profiles,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute returns the variables contributed for sel on node.
//
// The installation named by sel is looked up ignoring case, translated for
// node using baseEnv, and its contributions copied into the result. When
// binding names a profile that exists, its host, port, username and
// password are added under the binding's variable names. A profile that
// does not exist is skipped. On error no variables are returned.
func (c *Contributor) Compute(
	ctx context.Context,
	sel ToolSelection,
	binding *Binding,
	node *tool.Node,
	baseEnv env.Vars,
) (env.Vars, error) {
	inst, ok := tool.Find(c.installations(), sel.Name())
	if !ok {
		c.metrics.observeComputation(resultToolNotFound)
		return nil, &ToolNotFoundError{Name: sel.Name()}
	}

	if node == nil {
		c.metrics.observeComputation(resultNodeUnavailable)
		return nil, &NodeUnavailableError{Tool: inst.Name}
	}

	translated, err := c.tools.Translate(inst, node, baseEnv.Clone())
	if err != nil {
		c.metrics.observeComputation(resultTranslation)
		return nil, &TranslationError{Tool: inst.Name, Node: node.Name, Err: err}
	}

	result := env.Vars{}
	result.Merge(c.tools.Contributions(translated))

	if binding != nil && binding.Profile() != "" {
		c.bindConnection(ctx, result, binding)
	}

	c.metrics.observeComputation(resultOK)
	c.logger.DebugContext(ctx, "computed coverity environment",
		"tool", inst.Name, "node", node.Name, "variables", result.Keys())

	return result, nil
}

func (c *Contributor) bindConnection(ctx context.Context, result env.Vars, binding *Binding) {
	if c.profiles == nil {
		c.metrics.observeLookup(false)
		c.logger.DebugContext(ctx, "no connection registry, skipping connection variables",
			"profile", binding.Profile())
		return
	}

	profile, found := c.profiles.Lookup(binding.Profile())
	c.metrics.observeLookup(found)
	if !found {
		c.logger.DebugContext(ctx, "connection profile not found, skipping connection variables",
			"profile", binding.Profile())
		return
	}

	result.Set(binding.HostVariable(), profile.Host)
	result.Set(binding.PortVariable(), strconv.Itoa(profile.Port))
	result.Set(binding.UsernameVariable(), profile.Username)
	result.Set(binding.PasswordVariable(), profile.Password.Reveal())
}

// Apply returns baseEnv with the computed variables applied. PATH+COVERITY
// style entries are prepended to PATH using the node's list separator.
func (c *Contributor) Apply(
	ctx context.Context,
	sel ToolSelection,
	binding *Binding,
	node *tool.Node,
	baseEnv env.Vars,
) (env.Vars, error) {
	contributions, err := c.Compute(ctx, sel, binding, node, baseEnv)
	if err != nil {
		return nil, err
	}
	return env.Overlay(baseEnv, contributions, node.OS.ListSeparator()), nil
}

// ToolNames lists the installations a build can select.
func (c *Contributor) ToolNames() []string {
	return tool.Names(c.installations())
}

func (c *Contributor) installations() []tool.Installation {
	if c.tools == nil {
		return nil
	}
	return c.tools.Installations()
}

// ProfileNames lists the connection profiles a build can bind.
func (c *Contributor) ProfileNames() []string {
	if c.profiles == nil {
		return []string{}
	}
	return connection.Names(c.profiles.Profiles())
}
