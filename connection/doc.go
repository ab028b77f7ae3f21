// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package connection provides Coverity Connect connection profiles and the
// registry they are looked up in. Passwords are carried as Secret so they do
// not end up in logs or JSON output.
package connection
