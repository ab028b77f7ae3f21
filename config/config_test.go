// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/coverity-env/connection"
	"github.com/stacklok/coverity-env/contributor"
	"github.com/stacklok/coverity-env/env"
	"github.com/stacklok/coverity-env/tool"
)

const validConfig = `
tools:
  - name: cov-2024.6
    home: /opt/coverity/${COV_RELEASE}
    locations:
      - node: win-build-01
        home: C:\Coverity\2024.6
      - selector: '"arm64" in node.labels'
        home: /opt/coverity-arm
connections:
  - name: main
    host: cim.example.com
    port: 8443
    username: builder
    password: literal-pass
  - name: from-env
    host: 10.0.0.5
    port: 8080
    password: env:CIM_PASSWORD
wrapper:
  coverityToolName: cov-2024.6
  cimInstance: main
  passwordVariable: COV_PASSWORD
`

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	require.Len(t, f.Tools, 1)
	assert.Equal(t, "cov-2024.6", f.Tools[0].Name)
	assert.Equal(t, "/opt/coverity/${COV_RELEASE}", f.Tools[0].Home)
	require.Len(t, f.Tools[0].Locations, 2)
	assert.Equal(t, tool.Location{Node: "win-build-01", Home: `C:\Coverity\2024.6`}, f.Tools[0].Locations[0])
	assert.Equal(t, `"arm64" in node.labels`, f.Tools[0].Locations[1].Selector)

	assert.Equal(t, []string{"main", "from-env"}, f.ConnectionNames())
	assert.Equal(t, "COV_PASSWORD", f.Wrapper.PasswordVariable)

	sel, err := f.Wrapper.Selection()
	require.NoError(t, err)
	assert.Equal(t, "cov-2024.6", sel.Name())

	binding, err := f.Wrapper.Binding()
	require.NoError(t, err)
	assert.Equal(t, "main", binding.Profile())
	assert.Equal(t, "COV_PASSWORD", binding.PasswordVariable())
	assert.Equal(t, contributor.DefaultHostVariable, binding.HostVariable())
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Tools)

	_, err = f.Wrapper.Selection()
	assert.ErrorContains(t, err, "coverityToolName")
}

func TestParse_SchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		yaml        string
		errContains []string
	}{
		{
			name:        "unknown top-level key",
			yaml:        "servers: []\n",
			errContains: []string{"servers"},
		},
		{
			name: "port out of range",
			yaml: `
connections:
  - name: main
    host: cim
    port: 70000
`,
			errContains: []string{"port"},
		},
		{
			name: "port as string",
			yaml: `
connections:
  - name: main
    host: cim
    port: "8080"
`,
			errContains: []string{"port"},
		},
		{
			name: "location without node or selector",
			yaml: `
tools:
  - name: cov
    home: /opt/cov
    locations:
      - home: /elsewhere
`,
			errContains: []string{"locations"},
		},
		{
			name: "invalid override variable and missing host",
			yaml: `
connections:
  - name: main
    port: 8080
wrapper:
  hostVariable: MY-HOST
`,
			errContains: []string{"with 2 errors", "1.", "2.", "host"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config schema validation failed")
			for _, s := range tc.errContains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("tools: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := PathIn(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Tools, 1)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestPathIn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/home/u/.config", "coverity-env", "config.yaml"), PathIn("/home/u/.config"))
	assert.Equal(t, "config.yaml", filepath.Base(DefaultPath()))
}

func TestFile_Registries(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	tools, err := f.ToolRegistry()
	require.NoError(t, err)
	assert.Equal(t, []string{"cov-2024.6"}, tool.Names(tools.Installations()))

	resolver := NewSecretResolver(env.Vars{"CIM_PASSWORD": "from-environment"}, "")
	profiles, err := f.ConnectionRegistry(resolver, nil)
	require.NoError(t, err)

	main, ok := profiles.Lookup("main")
	require.True(t, ok)
	assert.Equal(t, "literal-pass", main.Password.Reveal())

	fromEnv, ok := profiles.Lookup("from-env")
	require.True(t, ok)
	assert.Equal(t, "from-environment", fromEnv.Password.Reveal())
	assert.Equal(t, 8080, fromEnv.Port)
}

func TestFile_ConnectionRegistryResolvesOnLookup(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	// CIM_PASSWORD is unset, which only matters to the from-env profile.
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	profiles, err := f.ConnectionRegistry(NewSecretResolver(env.Vars{}, ""), logger)
	require.NoError(t, err)

	assert.Equal(t, []string{"main", "from-env"}, connection.Names(profiles.Profiles()))
	for _, p := range profiles.Profiles() {
		assert.Empty(t, p.Password.Reveal(), p.Name)
	}

	main, ok := profiles.Lookup("main")
	require.True(t, ok)
	assert.Equal(t, "literal-pass", main.Password.Reveal())
	assert.Empty(t, logs.String())

	fromEnv, ok := profiles.Lookup("from-env")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.5", fromEnv.Host)
	assert.Empty(t, fromEnv.Password.Reveal())
	assert.Contains(t, logs.String(), "unable to resolve connection password")
	assert.Contains(t, logs.String(), "CIM_PASSWORD")

	_, ok = profiles.Lookup("missing")
	assert.False(t, ok)
}

func TestFile_ConnectionRegistryValidatesHosts(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	f.Connections = append(f.Connections, Connection{Name: "bad", Host: "https://cim", Port: 1})
	_, err = f.ConnectionRegistry(NewSecretResolver(env.Vars{}, ""), nil)
	assert.ErrorContains(t, err, "scheme")
}

func TestFile_ToolRegistryRejectsBadSelector(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(`
tools:
  - name: cov
    home: /opt/cov
    locations:
      - selector: 'node.os =='
        home: /x
`))
	require.NoError(t, err)

	_, err = f.ToolRegistry()
	assert.ErrorContains(t, err, "node selector")
}
