// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads the coverity-env YAML configuration.

The file lists tool installations, connection profiles and the wrapper
settings of a job:

	tools:
	  - name: cov-2024.6
	    home: /opt/coverity/${COV_RELEASE}
	    locations:
	      - node: win-build-01
	        home: C:\Coverity\2024.6
	connections:
	  - name: main
	    host: cim.example.com
	    port: 8443
	    username: builder
	    password: keyring:main
	wrapper:
	  coverityToolName: cov-2024.6
	  cimInstance: main

Documents are checked against an embedded JSON schema before decoding, so
unknown keys, bad ports and malformed variable names are reported together
as a numbered list.

Passwords can reference the system keyring (keyring:<account>, service
"coverity-env") or an environment variable (env:<VAR>). A reference is
resolved when its profile is looked up, so a broken reference only affects
the job bound to that profile. Store a keyring password with

	coverity-env connections set-password main

The default location is $XDG_CONFIG_HOME/coverity-env/config.yaml.
*/
package config
