// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package contributor computes the environment a Coverity build wrapper adds to
a build: the tool installation's PATH contribution and, optionally, the host,
port, username and password of a Coverity Connect profile.

# Usage

	tools, _ := tool.NewStaticRegistry(installations)
	profiles, _ := connection.NewStaticRegistry(profileList...)
	c := contributor.New(tools, profiles, contributor.WithLogger(logger))

	sel, _ := contributor.NewToolSelection("cov-2024.6")
	binding, _ := contributor.NewBinding("main",
	    contributor.WithPasswordVariable("COV_PASSWORD"))

	vars, err := c.Compute(ctx, sel, binding, node, env.Snapshot(&env.OSReader{}))

# Variable names

Without overrides the connection values are written to COVERITY_HOST,
COVERITY_PORT, COV_USER and COVERITY_PASSPHRASE. The port is written in
decimal.

# Errors

A tool name that matches no installation yields *ToolNotFoundError, a nil
node yields *NodeUnavailableError and a failed translation yields
*TranslationError; each matches its sentinel with errors.Is. All three
abort build setup. A binding whose profile does not exist is not an error:
the connection variables are simply left out.
*/
package contributor
