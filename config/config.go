// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/coverity-env/connection"
	"github.com/stacklok/coverity-env/contributor"
	"github.com/stacklok/coverity-env/env"
	"github.com/stacklok/coverity-env/tool"
)

//go:embed data/config.schema.json
var embeddedSchemaFS embed.FS

const schemaFile = "data/config.schema.json"

// File is the on-disk configuration.
type File struct {
	Tools       []tool.Installation `yaml:"tools,omitempty"`
	Connections []Connection        `yaml:"connections,omitempty"`
	Wrapper     Wrapper             `yaml:"wrapper,omitempty"`
}

// Connection is a connection profile as written in the file. Password may
// be a literal or a keyring:/env: reference.
type Connection struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Wrapper holds the per-job build wrapper settings.
type Wrapper struct {
	CoverityToolName string `yaml:"coverityToolName,omitempty"`
	CimInstance      string `yaml:"cimInstance,omitempty"`
	HostVariable     string `yaml:"hostVariable,omitempty"`
	PortVariable     string `yaml:"portVariable,omitempty"`
	UsernameVariable string `yaml:"usernameVariable,omitempty"`
	PasswordVariable string `yaml:"passwordVariable,omitempty"`
}

// PathIn returns the configuration file location under configHome.
func PathIn(configHome string) string {
	return filepath.Join(configHome, "coverity-env", "config.yaml")
}

// DefaultPath returns the configuration file location under the XDG config home.
func DefaultPath() string {
	return PathIn(xdg.ConfigHome)
}

// Load reads and validates the configuration file at path.
func Load(path string) (*File, error) {
	// #nosec G304 - the path is chosen by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse validates YAML configuration against the embedded schema and
// decodes it. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config to JSON: %w", err)
	}
	if err := validateSchema(asJSON); err != nil {
		return nil, err
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &f, nil
}

func validateSchema(data []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("config schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors("config schema validation failed", msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:\n", prefix, len(msgs))
	for i, msg := range msgs {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
	}
	return errors.New(strings.TrimSuffix(b.String(), "\n"))
}

// ToolRegistry builds the tool installation registry.
func (f *File) ToolRegistry(opts ...tool.Option) (*tool.StaticRegistry, error) {
	return tool.NewStaticRegistry(f.Tools, opts...)
}

// ConnectionRegistry builds the connection registry. Host and port are
// validated here; password references are resolved on lookup, one profile
// at a time. A nil resolver reads the process environment and the
// coverity-env keyring service.
func (f *File) ConnectionRegistry(resolver *SecretResolver, logger *slog.Logger) (*ProfileRegistry, error) {
	profiles := make([]connection.Profile, 0, len(f.Connections))
	refs := make(map[string]string, len(f.Connections))
	for _, c := range f.Connections {
		profiles = append(profiles, connection.Profile{
			Name:     c.Name,
			Host:     c.Host,
			Port:     c.Port,
			Username: c.Username,
		})
		refs[c.Name] = c.Password
	}
	static, err := connection.NewStaticRegistry(profiles...)
	if err != nil {
		return nil, err
	}
	if resolver == nil {
		resolver = NewSecretResolver(&env.OSReader{}, DefaultKeyringService)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileRegistry{static: static, refs: refs, resolver: resolver, logger: logger}, nil
}

// ConnectionNames lists configured connection names without resolving
// any secrets.
func (f *File) ConnectionNames() []string {
	names := make([]string, 0, len(f.Connections))
	for _, c := range f.Connections {
		names = append(names, c.Name)
	}
	return names
}

// Selection returns the configured tool selection.
func (w Wrapper) Selection() (contributor.ToolSelection, error) {
	sel, err := contributor.NewToolSelection(w.CoverityToolName)
	if err != nil {
		return contributor.ToolSelection{}, fmt.Errorf("wrapper.coverityToolName: %w", err)
	}
	return sel, nil
}

// Binding returns the configured connection binding.
func (w Wrapper) Binding() (*contributor.Binding, error) {
	return contributor.NewBinding(w.CimInstance,
		contributor.WithHostVariable(w.HostVariable),
		contributor.WithPortVariable(w.PortVariable),
		contributor.WithUsernameVariable(w.UsernameVariable),
		contributor.WithPasswordVariable(w.PasswordVariable),
	)
}
