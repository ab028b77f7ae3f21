// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package envvar provides validation functions for environment variable names.
package envvar

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxNameLength bounds accepted variable names.
const MaxNameLength = 255

var validNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateName validates that name can be used as an environment variable
// name on every supported node: a letter or underscore followed by letters,
// digits and underscores.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("environment variable name cannot be empty")
	}

	if strings.Contains(name, "\x00") {
		return fmt.Errorf("environment variable name cannot contain null bytes")
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("environment variable name exceeds maximum length of %d bytes", MaxNameLength)
	}

	if strings.Contains(name, "=") {
		return fmt.Errorf("environment variable name cannot contain '=': %q", name)
	}

	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("environment variable name must start with a letter or underscore and contain only letters, digits and underscores: %q", name)
	}

	return nil
}
