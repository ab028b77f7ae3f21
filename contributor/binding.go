// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package contributor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stacklok/coverity-env/validation/envvar"
)

// Default variable names for connection values.
const (
	DefaultHostVariable     = "COVERITY_HOST"
	DefaultPortVariable     = "COVERITY_PORT"
	DefaultUsernameVariable = "COV_USER"
	DefaultPasswordVariable = "COVERITY_PASSPHRASE"
)

// ToolSelection names the tool installation a build uses.
type ToolSelection struct {
	name string
}

// NewToolSelection returns a selection for name. The name is matched
// against installations ignoring case.
func NewToolSelection(name string) (ToolSelection, error) {
	if strings.TrimSpace(name) == "" {
		return ToolSelection{}, errors.New("coverity tool name is required")
	}
	return ToolSelection{name: name}, nil
}

// Name returns the selected tool name.
func (s ToolSelection) Name() string {
	return s.name
}

// Binding selects a connection profile and the variables its values are
// written to. A Binding is immutable once built.
type Binding struct {
	profile  string
	host     string
	port     string
	username string
	password string
}

// BindingOption overrides one variable name. An empty name keeps the default.
type BindingOption func(*Binding)

// WithHostVariable sets the variable receiving the host.
func WithHostVariable(name string) BindingOption {
	return func(b *Binding) { b.host = name }
}

// WithPortVariable sets the variable receiving the port.
func WithPortVariable(name string) BindingOption {
	return func(b *Binding) { b.port = name }
}

// WithUsernameVariable sets the variable receiving the username.
func WithUsernameVariable(name string) BindingOption {
	return func(b *Binding) { b.username = name }
}

// WithPasswordVariable sets the variable receiving the password.
func WithPasswordVariable(name string) BindingOption {
	return func(b *Binding) { b.password = name }
}

// NewBinding builds a binding for the named profile. An empty profile is
// allowed and binds nothing. Non-empty overrides must be valid variable
// names.
func NewBinding(profile string, opts ...BindingOption) (*Binding, error) {
	b := &Binding{profile: profile}
	for _, opt := range opts {
		opt(b)
	}

	var errs []error
	for _, o := range []struct{ field, name string }{
		{"host", b.host},
		{"port", b.port},
		{"username", b.username},
		{"password", b.password},
	} {
		if o.name == "" {
			continue
		}
		if err := envvar.ValidateName(o.name); err != nil {
			errs = append(errs, fmt.Errorf("%s variable: %w", o.field, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return b, nil
}

// Profile returns the connection profile name.
func (b *Binding) Profile() string {
	return b.profile
}

// HostVariable returns the effective host variable name.
func (b *Binding) HostVariable() string {
	return orDefault(b.host, DefaultHostVariable)
}

// PortVariable returns the effective port variable name.
func (b *Binding) PortVariable() string {
	return orDefault(b.port, DefaultPortVariable)
}

// UsernameVariable returns the effective username variable name.
func (b *Binding) UsernameVariable() string {
	return orDefault(b.username, DefaultUsernameVariable)
}

// PasswordVariable returns the effective password variable name.
func (b *Binding) PasswordVariable() string {
	return orDefault(b.password, DefaultPasswordVariable)
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
