// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"os"
	"sort"
	"strings"
)

// PathKey is the name of the search path variable.
const PathKey = "PATH"

// prefixSeparator splits a key such as PATH+COVERITY into the variable it
// prepends to and the contribution name.
const prefixSeparator = "+"

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
	Environ() []string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// Environ returns a copy of the process environment in KEY=value form
func (*OSReader) Environ() []string {
	return os.Environ()
}

// Vars maps environment variable names to values. Later writes to the same
// key replace earlier ones.
type Vars map[string]string

// Snapshot captures the environment visible through r.
func Snapshot(r Reader) Vars {
	return FromEnviron(r.Environ())
}

// FromEnviron parses KEY=value entries. Entries without '=' are ignored.
func FromEnviron(environ []string) Vars {
	vars := make(Vars, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}
	return vars
}

// Set stores value under key.
func (v Vars) Set(key, value string) {
	v[key] = value
}

// Lookup returns the value for key and whether it was present.
func (v Vars) Lookup(key string) (string, bool) {
	val, ok := v[key]
	return val, ok
}

// Getenv returns the value for key, or "" if absent.
func (v Vars) Getenv(key string) string {
	return v[key]
}

// Environ renders the map as sorted KEY=value entries, so Vars can be used
// wherever a Reader is expected.
func (v Vars) Environ() []string {
	out := make([]string, 0, len(v))
	for _, key := range v.Keys() {
		out = append(out, key+"="+v[key])
	}
	return out
}

// Keys returns the variable names in sorted order.
func (v Vars) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Pair is a single environment entry.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Pairs returns the entries sorted by key.
func (v Vars) Pairs() []Pair {
	pairs := make([]Pair, 0, len(v))
	for _, k := range v.Keys() {
		pairs = append(pairs, Pair{Key: k, Value: v[k]})
	}
	return pairs
}

// Clone returns an independent copy. A nil receiver yields an empty map.
func (v Vars) Clone() Vars {
	out := make(Vars, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Merge copies every entry of other into v, overwriting existing keys.
func (v Vars) Merge(other Vars) {
	for k, val := range other {
		v[k] = val
	}
}

// Overlay returns a copy of base with contributions applied.
//
// A key of the form NAME+SUFFIX prepends its value to NAME using
// listSeparator (for PATH+COVERITY this puts the tool's bin directory in
// front of PATH). Prefix keys are applied in sorted order after all plain
// keys, so the result does not depend on map iteration.
func Overlay(base, contributions Vars, listSeparator string) Vars {
	out := base.Clone()

	var prefixed []string
	for _, k := range contributions.Keys() {
		if name, _, ok := strings.Cut(k, prefixSeparator); ok && name != "" {
			prefixed = append(prefixed, k)
			continue
		}
		out[k] = contributions[k]
	}

	for _, k := range prefixed {
		name, _, _ := strings.Cut(k, prefixSeparator)
		value := contributions[k]
		if value == "" {
			continue
		}
		if current := out[name]; current != "" {
			out[name] = value + listSeparator + current
		} else {
			out[name] = value
		}
	}

	return out
}
