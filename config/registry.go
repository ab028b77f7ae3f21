// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"

	"github.com/stacklok/coverity-env/connection"
)

// ProfileRegistry serves the configured connection profiles and resolves a
// profile's password reference when the profile is looked up.
type ProfileRegistry struct {
	static   *connection.StaticRegistry
	refs     map[string]string
	resolver *SecretResolver
	logger   *slog.Logger
}

var _ connection.Registry = (*ProfileRegistry)(nil)

// Profiles returns the profiles in file order. Passwords are not resolved.
func (r *ProfileRegistry) Profiles() []connection.Profile {
	return r.static.Profiles()
}

// Lookup returns the named profile with its password resolved. A reference
// that cannot be resolved leaves the password empty and is logged; the
// profile itself is still returned.
func (r *ProfileRegistry) Lookup(name string) (connection.Profile, bool) {
	profile, ok := r.static.Lookup(name)
	if !ok {
		return connection.Profile{}, false
	}

	ref := r.refs[name]
	if ref == "" {
		return profile, true
	}
	password, err := r.resolver.Resolve(ref)
	if err != nil {
		r.logger.Warn("unable to resolve connection password, leaving it empty",
			"connection", name, "error", err)
		return profile, true
	}
	profile.Password = password
	return profile, true
}
