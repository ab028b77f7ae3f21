// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package connection

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=registry.go -destination=mocks/mock_registry.go -package=mocks Registry

import (
	"errors"
	"fmt"
)

// Registry resolves connection profiles by name.
type Registry interface {
	// Profiles lists the configured profiles in configuration order.
	Profiles() []Profile

	// Lookup returns the profile with exactly the given name.
	Lookup(name string) (Profile, bool)
}

// Names lists profile names in order.
func Names(profiles []Profile) []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return names
}

// StaticRegistry serves a fixed set of profiles.
type StaticRegistry struct {
	profiles []Profile
	byName   map[string]int
}

// NewStaticRegistry validates profiles and indexes them by name. Names must
// be unique.
func NewStaticRegistry(profiles ...Profile) (*StaticRegistry, error) {
	r := &StaticRegistry{
		profiles: make([]Profile, 0, len(profiles)),
		byName:   make(map[string]int, len(profiles)),
	}

	var errs []error
	for i, p := range profiles {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("connection %d (%q): %w", i, p.Name, err))
			continue
		}
		if _, dup := r.byName[p.Name]; dup {
			errs = append(errs, fmt.Errorf("connection %q: duplicate name", p.Name))
			continue
		}
		r.byName[p.Name] = len(r.profiles)
		r.profiles = append(r.profiles, p)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// Profiles implements Registry.
func (r *StaticRegistry) Profiles() []Profile {
	out := make([]Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// Lookup implements Registry.
func (r *StaticRegistry) Lookup(name string) (Profile, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Profile{}, false
	}
	return r.profiles[i], true
}
