// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/spf13/pflag"

	"github.com/stacklok/coverity-env/config"
)

// wrapperFlags override the wrapper section of the config file.
type wrapperFlags struct {
	tool             string
	instance         string
	hostVariable     string
	portVariable     string
	usernameVariable string
	passwordVariable string
}

func (f *wrapperFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.tool, "tool", "", "Coverity tool installation name (overrides wrapper.coverityToolName)")
	fs.StringVar(&f.instance, "instance", "", "Connection profile name (overrides wrapper.cimInstance)")
	fs.StringVar(&f.hostVariable, "host-variable", "", "Variable receiving the host (default COVERITY_HOST)")
	fs.StringVar(&f.portVariable, "port-variable", "", "Variable receiving the port (default COVERITY_PORT)")
	fs.StringVar(&f.usernameVariable, "username-variable", "", "Variable receiving the username (default COV_USER)")
	fs.StringVar(&f.passwordVariable, "password-variable", "", "Variable receiving the password (default COVERITY_PASSPHRASE)")
}

// apply returns w with every explicitly set flag taking precedence.
// A flag set to the empty string clears the file value.
func (f *wrapperFlags) apply(fs *pflag.FlagSet, w config.Wrapper) config.Wrapper {
	overrides := []struct {
		flag  string
		value string
		dst   *string
	}{
		{"tool", f.tool, &w.CoverityToolName},
		{"instance", f.instance, &w.CimInstance},
		{"host-variable", f.hostVariable, &w.HostVariable},
		{"port-variable", f.portVariable, &w.PortVariable},
		{"username-variable", f.usernameVariable, &w.UsernameVariable},
		{"password-variable", f.passwordVariable, &w.PasswordVariable},
	}
	for _, o := range overrides {
		if fs.Changed(o.flag) {
			*o.dst = o.value
		}
	}
	return w
}

// nodeFlags describe the node the tool is translated for.
type nodeFlags struct {
	name   string
	os     string
	labels []string
}

func (f *nodeFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "node", "", "Name of the build node")
	fs.StringVar(&f.os, "os", "", "Operating system of the build node: unix or windows (default unix)")
	fs.StringSliceVar(&f.labels, "label", nil, "Node label, repeatable")
}
