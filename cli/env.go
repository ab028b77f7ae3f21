// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/spf13/cobra"

	"github.com/stacklok/coverity-env/config"
	"github.com/stacklok/coverity-env/contributor"
	"github.com/stacklok/coverity-env/env"
	"github.com/stacklok/coverity-env/tool"
)

const (
	formatExport = "export"
	formatJSON   = "json"
)

type envOptions struct {
	wrapper wrapperFlags
	node    nodeFlags
	format  string
	merged  bool
}

func newEnvCommand(root *rootOptions) *cobra.Command {
	opts := &envOptions{}

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the environment variables for a wrapped build",
		Long: `Print the variables contributed for the selected tool installation and
connection profile. With --merged the current process environment is
printed with the contributions applied, PATH+COVERITY prepended to PATH.

The output contains the connection password in clear text.`,
		Example: `  eval "$(coverity-env env --tool cov-2025 --instance main)"
  coverity-env env --node win-agent --os windows --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnv(cmd, root, opts)
		},
	}

	opts.wrapper.register(cmd.Flags())
	opts.node.register(cmd.Flags())
	cmd.Flags().StringVar(&opts.format, "format", formatExport, "Output format: export or json")
	cmd.Flags().BoolVar(&opts.merged, "merged", false, "Print the full environment with contributions applied")

	return cmd
}

func runEnv(cmd *cobra.Command, root *rootOptions, opts *envOptions) error {
	if opts.format != formatExport && opts.format != formatJSON {
		return fmt.Errorf("unknown output format %q: expected %s or %s", opts.format, formatExport, formatJSON)
	}

	file, err := root.loadConfig()
	if err != nil {
		return err
	}

	wrapper := opts.wrapper.apply(cmd.Flags(), file.Wrapper)
	sel, err := wrapper.Selection()
	if err != nil {
		return err
	}
	binding, err := wrapper.Binding()
	if err != nil {
		return err
	}

	node, err := tool.NewNode(opts.node.name, opts.node.os, opts.node.labels...)
	if err != nil {
		return err
	}

	c, err := newContributor(root, file, nil)
	if err != nil {
		return err
	}

	base := env.Snapshot(&env.OSReader{})
	var vars env.Vars
	if opts.merged {
		vars, err = c.Apply(cmd.Context(), sel, binding, node, base)
	} else {
		vars, err = c.Compute(cmd.Context(), sel, binding, node, base)
	}
	if err != nil {
		return err
	}

	return writeVars(cmd.OutOrStdout(), vars, opts.format, node.OS.ListSeparator())
}

// writeVars prints vars sorted by key. In export form a NAME+SUFFIX entry
// becomes a prepend to NAME so the output can be evaluated by a shell; the
// separator is only emitted when NAME is already non-empty.
func writeVars(w io.Writer, vars env.Vars, format, listSeparator string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string(vars))
	}
	for _, p := range vars.Pairs() {
		var line string
		if name, _, ok := strings.Cut(p.Key, "+"); ok {
			line = fmt.Sprintf("export %s=%s\"${%s:+%s$%s}\"\n",
				name, shellescape.Quote(p.Value), name, listSeparator, name)
		} else {
			line = fmt.Sprintf("export %s=%s\n", p.Key, shellescape.Quote(p.Value))
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// newContributor builds the registries from file. Connection passwords are
// resolved only for the profile a computation binds.
func newContributor(root *rootOptions, file *config.File, opts []contributor.Option) (*contributor.Contributor, error) {
	tools, err := file.ToolRegistry(tool.WithLogger(root.logger))
	if err != nil {
		return nil, fmt.Errorf("building tool registry: %w", err)
	}
	profiles, err := file.ConnectionRegistry(nil, root.logger)
	if err != nil {
		return nil, fmt.Errorf("building connection registry: %w", err)
	}
	opts = append([]contributor.Option{contributor.WithLogger(root.logger)}, opts...)
	return contributor.New(tools, profiles, opts...), nil
}
