// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package host provides validation functions for connection hosts and ports.
package host

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const (
	// MaxHostLength is the DNS limit for a fully qualified name.
	MaxHostLength = 253
	// MinPort and MaxPort bound a TCP port.
	MinPort = 1
	MaxPort = 65535
)

// ValidateHost validates a bare host name or IP address as used in a
// connection profile. Schemes, paths and embedded ports are rejected since
// the port is configured separately.
func ValidateHost(h string) error {
	if h == "" {
		return fmt.Errorf("host cannot be empty")
	}

	if len(h) > MaxHostLength {
		return fmt.Errorf("host exceeds maximum length of %d bytes", MaxHostLength)
	}

	if strings.Contains(h, "://") {
		return fmt.Errorf("host must not include a scheme: %s", h)
	}

	if strings.ContainsAny(h, "/?#@ ") {
		return fmt.Errorf("host must be a bare name or address: %s", h)
	}

	// Same check net/http applies to the Host header
	if !httpguts.ValidHostHeader(h) {
		return fmt.Errorf("invalid host: contains invalid characters: %q", h)
	}

	if hasPort(h) {
		return fmt.Errorf("host must not include a port, configure it separately: %s", h)
	}

	return nil
}

// ValidatePort validates that port is a usable TCP port.
func ValidatePort(port int) error {
	if port < MinPort || port > MaxPort {
		return fmt.Errorf("port %d out of range %d-%d", port, MinPort, MaxPort)
	}
	return nil
}

// hasPort reports whether h carries a :port suffix. Bracketed and bare IPv6
// literals contain colons of their own.
func hasPort(h string) bool {
	if strings.HasPrefix(h, "[") {
		return !strings.HasSuffix(h, "]")
	}
	return strings.Count(h, ":") == 1
}
