// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides a pre-configured [log/slog.Logger] factory shared by
the coverity-env packages and command.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Redaction

Connection profiles carry passwords. Any attribute whose key contains
"password", "passphrase", "secret" or "token" is written as [RedactedValue].
Add more key fragments with [WithSecretKeys]:

	logger := logging.New(logging.WithSecretKeys("credential"))
	logger.Info("profile", "credential_ref", "keyring:main") // value redacted

# Configuration

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)

Use [NewHandler] to wrap the handler with middleware.
*/
package logging
