// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package host validates the host and port of a connection profile before the
values are written into a build environment.

	if err := host.ValidateHost("coverity.example.com"); err != nil {
		// reject the profile
	}
	if err := host.ValidatePort(8443); err != nil {
		// reject the profile
	}

Hosts must:
  - Be non-empty and at most 253 bytes
  - Not contain a scheme, path, query, fragment or user info
  - Pass the same character check net/http applies to Host headers
  - Not carry a port (the port is a separate field)

IPv4 and IPv6 literals are accepted; IPv6 may be bracketed.
*/
package host
