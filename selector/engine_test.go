// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package selector_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/coverity-env/selector"
)

func linuxNode() map[string]any {
	return map[string]any{
		"name":   "linux-agent-1",
		"os":     "unix",
		"labels": []string{"linux", "arm64"},
	}
}

func TestEngine_Match(t *testing.T) {
	t.Parallel()

	engine := selector.NewEngine()

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"os equality", `node.os == "unix"`, true},
		{"os mismatch", `node.os == "windows"`, false},
		{"label membership", `"arm64" in node.labels`, true},
		{"label missing", `"gpu" in node.labels`, false},
		{"name prefix", `node.name.startsWith("linux-")`, true},
		{"combined", `node.os == "unix" && node.labels.exists(l, l == "linux")`, true},
		{"literal true", `true`, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := engine.Match(tc.expr, linuxNode())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEngine_CompileErrors(t *testing.T) {
	t.Parallel()

	engine := selector.NewEngine()

	tests := []struct {
		name  string
		expr  string
		stage string
	}{
		{"unbalanced parenthesis", `(node.os == "unix"`, "parse"},
		{"unknown variable", `agent.os == "unix"`, "check"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := engine.Compile(tc.expr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, selector.ErrInvalidSelector))

			var compileErr *selector.CompileError
			require.True(t, errors.As(err, &compileErr))
			assert.Equal(t, tc.stage, compileErr.Stage)
			assert.Equal(t, tc.expr, compileErr.Source)
			assert.NotEmpty(t, compileErr.Issues)
			assert.Contains(t, compileErr.AsJSON(), `"stage":"`+tc.stage+`"`)
		})
	}
}

func TestEngine_RejectsNonBoolean(t *testing.T) {
	t.Parallel()

	engine := selector.NewEngine()

	_, err := engine.Compile(`"unix"`)
	assert.ErrorIs(t, err, selector.ErrNotBoolean)

	// Map values are dyn, so the type is only known at evaluation time.
	ok, err := engine.Match(`node.name`, linuxNode())
	assert.False(t, ok)
	assert.ErrorIs(t, err, selector.ErrNotBoolean)
}

func TestEngine_EvaluationError(t *testing.T) {
	t.Parallel()

	engine := selector.NewEngine()

	_, err := engine.Match(`node.zone == "eu"`, linuxNode())
	assert.ErrorIs(t, err, selector.ErrEvaluation)
}

func TestEngine_MaxLength(t *testing.T) {
	t.Parallel()

	engine := selector.NewEngine().WithMaxLength(10)

	err := engine.Check(`node.os == "` + strings.Repeat("x", 20) + `"`)
	assert.ErrorIs(t, err, selector.ErrInvalidSelector)
	assert.NoError(t, engine.Check(`true`))
}

func TestEngine_CompileIsCached(t *testing.T) {
	t.Parallel()

	engine := selector.NewEngine()

	first, err := engine.Compile(`node.os == "unix"`)
	require.NoError(t, err)
	second, err := engine.Compile(`node.os == "unix"`)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, `node.os == "unix"`, first.Source())
}

func TestEngine_Concurrency(t *testing.T) {
	t.Parallel()

	engine := selector.NewEngine()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := engine.Match(`"linux" in node.labels`, linuxNode())
			assert.NoError(t, err)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}
