// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package connection

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stacklok/coverity-env/validation/host"
)

const maskedSecret = "********"

// Secret holds a credential. Its formatting, logging and JSON forms never
// contain the value; use Reveal to obtain it.
type Secret string

// Reveal returns the secret value.
func (s Secret) Reveal() string {
	return string(s)
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return maskedSecret
}

// GoString implements fmt.GoStringer so %#v does not leak the value.
func (s Secret) GoString() string {
	return fmt.Sprintf("connection.Secret(%q)", s.String())
}

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

// MarshalJSON implements json.Marshaler.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// Profile is a named Coverity Connect instance.
type Profile struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username,omitempty"`
	Password Secret `json:"password,omitempty"`
}

// Validate checks the profile's name, host and port.
func (p Profile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name cannot be empty"))
	}
	if err := host.ValidateHost(p.Host); err != nil {
		errs = append(errs, err)
	}
	if err := host.ValidatePort(p.Port); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
