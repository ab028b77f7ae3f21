// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stacklok/coverity-env/config"
	"github.com/stacklok/coverity-env/env"
	"github.com/stacklok/coverity-env/tool"
)

func newToolsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List configured Coverity tool installations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := root.loadConfig()
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), tool.Names(file.Tools))
		},
	}
}

// The connections command does not resolve passwords, so it works without
// keyring access.
func newConnectionsCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connections",
		Short: "List configured Coverity Connect instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := root.loadConfig()
			if err != nil {
				return err
			}
			return writeLines(cmd.OutOrStdout(), file.ConnectionNames())
		},
	}
	cmd.AddCommand(newSetPasswordCommand(root))
	return cmd
}

func newSetPasswordCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-password NAME",
		Short: "Store a connection password in the system keyring",
		Long: `Read a password from the first line of standard input, store it in the
system keyring under the coverity-env service and print the reference to
use as the connection's password in the config file.`,
		Example: `  printf '%s\n' "$CIM_PASSWORD" | coverity-env connections set-password main`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			resolver := config.NewSecretResolver(&env.OSReader{}, config.DefaultKeyringService)
			ref, err := resolver.Store(args[0], password)
			if err != nil {
				return err
			}
			root.logger.Debug("stored connection password", "connection", args[0])
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "password: %s\n", ref)
			return err
		},
	}
}

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("no password given on standard input")
	}
	return line, nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
