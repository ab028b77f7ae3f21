// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stacklok/coverity-env/config"
	"github.com/stacklok/coverity-env/logging"
)

type rootOptions struct {
	configPath string
	debug      bool
	logFormat  string

	logger *slog.Logger
}

// NewRootCommand builds the coverity-env command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "coverity-env",
		Short: "Compute the Coverity environment for a build",
		Long: `coverity-env resolves a Coverity analysis tool installation for a build
node and prints the environment variables a wrapped build needs: the tool's
bin directory on PATH and, when a connection profile is bound, the Coverity
Connect host, port, username and password.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setupLogger(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Path to config file (default: $XDG_CONFIG_HOME/coverity-env/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(
		newEnvCommand(opts),
		newToolsCommand(opts),
		newConnectionsCommand(opts),
		newServeCommand(opts),
	)

	return cmd
}

func (o *rootOptions) setupLogger(cmd *cobra.Command) error {
	format, err := logging.ParseFormat(o.logFormat)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	o.logger = logging.New(
		logging.WithFormat(format),
		logging.WithLevel(level),
		logging.WithOutput(cmd.ErrOrStderr()),
	)
	return nil
}

func (o *rootOptions) loadConfig() (*config.File, error) {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	file, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	o.logger.Debug("loaded config", "path", path, "tools", len(file.Tools), "connections", len(file.Connections))
	return file, nil
}
