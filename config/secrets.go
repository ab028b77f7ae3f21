// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/stacklok/coverity-env/connection"
	"github.com/stacklok/coverity-env/env"
)

// DefaultKeyringService is the keyring service connection passwords are stored under.
const DefaultKeyringService = "coverity-env"

// Reference prefixes understood by SecretResolver.
const (
	KeyringPrefix = "keyring:"
	EnvPrefix     = "env:"
)

// ErrSecretNotFound is returned when a referenced secret does not exist.
var ErrSecretNotFound = errors.New("secret not found")

// SecretResolver turns password references into secrets:
//   - keyring:<account> reads <account> from the system keyring
//   - env:<VAR> reads VAR from the environment
//   - anything else is used literally
type SecretResolver struct {
	env     env.Reader
	service string
}

// NewSecretResolver returns a resolver reading environment references from
// reader and keyring references from service. An empty service means
// DefaultKeyringService.
func NewSecretResolver(reader env.Reader, service string) *SecretResolver {
	if service == "" {
		service = DefaultKeyringService
	}
	return &SecretResolver{env: reader, service: service}
}

// Resolve returns the secret for ref.
func (r *SecretResolver) Resolve(ref string) (connection.Secret, error) {
	switch {
	case strings.HasPrefix(ref, KeyringPrefix):
		account := strings.TrimPrefix(ref, KeyringPrefix)
		if account == "" {
			return "", fmt.Errorf("empty keyring reference")
		}
		value, err := keyring.Get(r.service, account)
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w: keyring entry %q in service %q", ErrSecretNotFound, account, r.service)
		}
		if err != nil {
			return "", fmt.Errorf("keyring access for %q failed: %w", account, err)
		}
		return connection.Secret(value), nil

	case strings.HasPrefix(ref, EnvPrefix):
		name := strings.TrimPrefix(ref, EnvPrefix)
		if name == "" {
			return "", fmt.Errorf("empty environment reference")
		}
		value := r.env.Getenv(name)
		if value == "" {
			return "", fmt.Errorf("%w: environment variable %q is not set", ErrSecretNotFound, name)
		}
		return connection.Secret(value), nil

	default:
		return connection.Secret(ref), nil
	}
}

// Store saves a password in the keyring and returns the reference to put
// in the configuration file.
func (r *SecretResolver) Store(account, password string) (string, error) {
	if account == "" {
		return "", fmt.Errorf("keyring account cannot be empty")
	}
	if err := keyring.Set(r.service, account, password); err != nil {
		return "", fmt.Errorf("failed to store keyring entry %q: %w", account, err)
	}
	return KeyringPrefix + account, nil
}
