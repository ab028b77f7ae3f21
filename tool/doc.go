// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package tool provides the Coverity tool installation registry.

An Installation names a toolset and its home directory. Before a build can
use it, the installation is translated for the node the build runs on:

  - a Location whose Node equals the node name wins
  - otherwise the first Location whose CEL Selector matches the node
  - otherwise the installation's own Home

The chosen home has $VAR and ${VAR} references expanded from the build's
base environment and its separators rewritten for the node's OS. A
translated installation contributes PATH+COVERITY, pointing at its bin
directory.

	reg, err := tool.NewStaticRegistry([]tool.Installation{{
	    Name: "cov-2024.6",
	    Home: "/opt/coverity/${COV_RELEASE}",
	    Locations: []tool.Location{
	        {Node: "win-build-01", Home: `C:\Coverity\2024.6`},
	        {Selector: `"arm64" in node.labels`, Home: "/opt/coverity-arm"},
	    },
	}})

	inst, _ := tool.Find(reg.Installations(), "COV-2024.6")
	node, _ := tool.NewNode("linux-1", "linux")
	translated, err := reg.Translate(inst, node, env.Vars{"COV_RELEASE": "2024.6"})
	contrib := reg.Contributions(translated) // PATH+COVERITY=/opt/coverity/2024.6/bin
*/
package tool
