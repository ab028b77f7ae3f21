// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/coverity-env/env/mocks"
)

func TestSecretResolver_Keyring(t *testing.T) { //nolint:paralleltest // Replaces the global keyring provider
	keyring.MockInit()

	resolver := NewSecretResolver(nil, "coverity-env-test")

	ref, err := resolver.Store("main", "s3cr3t")
	require.NoError(t, err)
	assert.Equal(t, "keyring:main", ref)

	secret, err := resolver.Resolve(ref)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", secret.Reveal())

	_, err = resolver.Resolve("keyring:absent")
	assert.ErrorIs(t, err, ErrSecretNotFound)

	_, err = resolver.Resolve("keyring:")
	assert.Error(t, err)

	_, err = resolver.Store("", "x")
	assert.Error(t, err)
}

func TestSecretResolver_Env(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Getenv("CIM_PASSWORD").Return("from-env")
	reader.EXPECT().Getenv("UNSET").Return("")

	resolver := NewSecretResolver(reader, "")

	secret, err := resolver.Resolve("env:CIM_PASSWORD")
	require.NoError(t, err)
	assert.Equal(t, "from-env", secret.Reveal())

	_, err = resolver.Resolve("env:UNSET")
	assert.ErrorIs(t, err, ErrSecretNotFound)

	_, err = resolver.Resolve("env:")
	assert.Error(t, err)
}

func TestSecretResolver_Literal(t *testing.T) {
	t.Parallel()

	resolver := NewSecretResolver(nil, "")

	for _, ref := range []string{"", "plain", "keyringish", "ENV:upper-is-literal"} {
		secret, err := resolver.Resolve(ref)
		require.NoError(t, err)
		assert.Equal(t, ref, secret.Reveal())
	}
}
