// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package envvar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{"default host", "COVERITY_HOST", false},
		{"lowercase", "cov_user", false},
		{"leading underscore", "_H", false},
		{"single letter", "P", false},
		{"digits after first char", "HOST2", false},

		{"empty", "", true},
		{"whitespace", "   ", true},
		{"leading digit", "2HOST", true},
		{"dash", "MY-HOST", true},
		{"equals", "A=B", true},
		{"plus prefix form", "PATH+COV", true},
		{"space inside", "MY HOST", true},
		{"null byte", "HOST\x00", true},
		{"too long", strings.Repeat("A", MaxNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
