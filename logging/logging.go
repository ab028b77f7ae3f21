// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// RedactedValue replaces the value of any attribute whose key names a secret.
const RedactedValue = "[REDACTED]"

// defaultSecretKeys are attribute key fragments that are always redacted.
var defaultSecretKeys = []string{"password", "passphrase", "secret", "token"}

// Format represents the log output format.
type Format int

const (
	// FormatJSON produces JSON-formatted log output using [log/slog.JSONHandler].
	// This is the default format.
	FormatJSON Format = iota

	// FormatText produces human-readable text output using [log/slog.TextHandler].
	FormatText
)

// ParseFormat converts "json" or "text" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format %q: expected json or text", s)
	}
}

// config holds the resolved configuration for creating a logger.
type config struct {
	format     Format
	level      slog.Leveler
	output     io.Writer
	secretKeys []string
}

// Option configures the logger created by [New].
type Option func(*config)

// WithFormat sets the output format (JSON or Text).
// The default is [FormatJSON].
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithLevel sets the minimum log level.
// The default is [log/slog.LevelInfo].
//
// Accepts any [log/slog.Leveler], including [*log/slog.LevelVar] for
// dynamic level changes.
func WithLevel(l slog.Leveler) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput sets the destination writer for log output.
// The default is [os.Stderr].
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithSecretKeys adds attribute key fragments whose values are redacted,
// in addition to password, passphrase, secret and token.
func WithSecretKeys(keys ...string) Option {
	return func(c *config) {
		for _, k := range keys {
			c.secretKeys = append(c.secretKeys, strings.ToLower(k))
		}
	}
}

// New creates a pre-configured [*log/slog.Logger].
//
// Defaults:
//   - Format: JSON ([FormatJSON])
//   - Level: INFO ([log/slog.LevelInfo])
//   - Output: [os.Stderr]
//   - Timestamps: [time.RFC3339]
//   - Secret-looking attributes redacted
func New(opts ...Option) *slog.Logger {
	return slog.New(NewHandler(opts...))
}

// NewHandler returns the [log/slog.Handler] that [New] wraps, for callers
// that need to add middleware around it.
func NewHandler(opts ...Option) slog.Handler {
	cfg := &config{
		format:     FormatJSON,
		level:      slog.LevelInfo,
		output:     os.Stderr,
		secretKeys: append([]string(nil), defaultSecretKeys...),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		ReplaceAttr: newReplaceAttr(cfg.secretKeys),
	}

	if cfg.format == FormatText {
		return slog.NewTextHandler(cfg.output, handlerOpts)
	}
	return slog.NewJSONHandler(cfg.output, handlerOpts)
}

// newReplaceAttr formats the time attribute to RFC3339 and redacts values of
// attributes whose key contains one of secretKeys.
func newReplaceAttr(secretKeys []string) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.Format(time.RFC3339))
			}
			return a
		}
		if a.Value.Kind() == slog.KindGroup {
			return a
		}
		key := strings.ToLower(a.Key)
		for _, secret := range secretKeys {
			if strings.Contains(key, secret) {
				a.Value = slog.StringValue(RedactedValue)
				break
			}
		}
		return a
	}
}
