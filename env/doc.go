// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides environment variable access behind an interface and the
Vars map used to carry environment contributions into a build.

# Reading the ambient environment

Use OSReader to read the process environment, or Snapshot to capture it as
a Vars map that can be passed to tool translation:

	reader := &env.OSReader{}
	base := env.Snapshot(reader)

Vars itself implements Reader, so a captured snapshot can be handed to any
code that expects one.

# Contributions

Vars is a plain map with sorted accessors (Keys, Pairs, Environ) so output
is deterministic. Overlay applies contributions to a base environment; keys
of the form NAME+SUFFIX prepend to NAME instead of replacing it:

	contrib := env.Vars{"PATH+COVERITY": "/opt/cov/bin"}
	merged := env.Overlay(base, contrib, ":")
	// merged["PATH"] == "/opt/cov/bin:" + base["PATH"]

# Testing

A generated mock is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Environ().Return([]string{"HOME=/home/builder"})
*/
package env
