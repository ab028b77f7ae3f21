// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package contributor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToolSelection(t *testing.T) {
	t.Parallel()

	sel, err := NewToolSelection("covtool")
	require.NoError(t, err)
	assert.Equal(t, "covtool", sel.Name())

	_, err = NewToolSelection("  ")
	assert.Error(t, err)
}

func TestNewBinding_Defaults(t *testing.T) {
	t.Parallel()

	b, err := NewBinding("main")
	require.NoError(t, err)

	assert.Equal(t, "main", b.Profile())
	assert.Equal(t, "COVERITY_HOST", b.HostVariable())
	assert.Equal(t, "COVERITY_PORT", b.PortVariable())
	assert.Equal(t, "COV_USER", b.UsernameVariable())
	assert.Equal(t, "COVERITY_PASSPHRASE", b.PasswordVariable())
}

func TestNewBinding_Overrides(t *testing.T) {
	t.Parallel()

	b, err := NewBinding("main",
		WithHostVariable("H"),
		WithPortVariable("P"),
		WithUsernameVariable("U"),
		WithPasswordVariable("W"),
	)
	require.NoError(t, err)

	assert.Equal(t, "H", b.HostVariable())
	assert.Equal(t, "P", b.PortVariable())
	assert.Equal(t, "U", b.UsernameVariable())
	assert.Equal(t, "W", b.PasswordVariable())
}

func TestNewBinding_InvalidOverrides(t *testing.T) {
	t.Parallel()

	_, err := NewBinding("main", WithHostVariable("MY-HOST"), WithPasswordVariable("1PASS"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host variable")
	assert.Contains(t, err.Error(), "password variable")
	assert.NotContains(t, err.Error(), "port variable")
}

func TestNewBinding_EmptyProfileAllowed(t *testing.T) {
	t.Parallel()

	b, err := NewBinding("")
	require.NoError(t, err)
	assert.Empty(t, b.Profile())
}
