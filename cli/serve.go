// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/stacklok/coverity-env/api"
	"github.com/stacklok/coverity-env/contributor"
	"github.com/stacklok/coverity-env/env"
	"github.com/stacklok/coverity-env/tool"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tool and connection names over HTTP",
		Long: `Serve the configured tool installation and connection profile names as
JSON for job configuration forms, an environment preview with the password
masked, /health and /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := root.loadConfig()
			if err != nil {
				return err
			}

			tools, err := file.ToolRegistry(tool.WithLogger(root.logger))
			if err != nil {
				return fmt.Errorf("building tool registry: %w", err)
			}
			profiles, err := file.ConnectionRegistry(nil, root.logger)
			if err != nil {
				return fmt.Errorf("building connection registry: %w", err)
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			c := contributor.New(tools, profiles, contributor.WithLogger(root.logger), contributor.WithMetrics(reg))
			handler := api.NewHandler(tools, profiles, root.logger,
				api.WithContributor(c, env.Snapshot(&env.OSReader{})))

			router := api.NewRouter(handler, reg)
			return api.Serve(cmd.Context(), addr, router, root.logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "Listen address")

	return cmd
}
