// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package envvar validates environment variable names used as overrides for
connection variables.

	if err := envvar.ValidateName("MY_COV_HOST"); err != nil {
		// reject the binding
	}

Valid names:

	"COVERITY_HOST"
	"_private"
	"cov_user2"

Invalid names:

	""           // empty
	"2FAST"      // leading digit
	"MY-HOST"    // dash
	"A=B"        // equals sign
	"PATH+COV"   // plus is reserved for prefix contributions
*/
package envvar
