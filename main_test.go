package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args. The persistent flags are package globals,
// so these tests do not run in parallel.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	configPath, verbose, quiet = "", false, false

	var stdout, stderr bytes.Buffer
	root := newRootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "granular dev\n", stdout)
}

func TestRewriteStdin(t *testing.T) {
	src := "import { useState } from 'react';\nuseState();\n"

	stdout, _, err := execute(t, src, "rewrite", "-")
	require.NoError(t, err)
	assert.Equal(t, "import _React from 'react';\nconst { useState } = _React;\nuseState();\n", stdout)
}

func TestRewriteStdinWithThreshold(t *testing.T) {
	src := "import { useState } from 'react';\nuseState();\n"

	stdout, _, err := execute(t, src, "rewrite", "--extract", "2", "--declaration", "var", "-")
	require.NoError(t, err)
	assert.Equal(t, "import _React, { useState } from 'react';\nuseState();\n", stdout)
}

func TestRewriteWritesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.jsx")
	require.NoError(t, os.WriteFile(path, []byte("import React from 'react';\nexport default <p />;\n"), 0o644))

	stdout, stderr, err := execute(t, "", "rewrite", "--write", dir)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Files rewritten: 1")

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "import React from 'react';\nconst { createElement } = React;\nexport default <p />;\n", string(written))
}

func TestRewriteDiffAndFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.js"), []byte("import { memo } from 'react';\nmemo();\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.js"), []byte("import { from;"), 0o644))

	stdout, _, err := execute(t, "", "rewrite", "--diff", "--quiet", dir)
	require.ErrorIs(t, err, ErrFilesFailed)
	assert.Contains(t, stdout, "+const { memo } = _React;")

	untouched, err := os.ReadFile(filepath.Join(dir, "ok.js"))
	require.NoError(t, err)
	assert.Equal(t, "import { memo } from 'react';\nmemo();\n", string(untouched))
}

func TestRewriteRejectsBadOptions(t *testing.T) {
	_, _, err := execute(t, "", "rewrite", "--declaration", "function", "-")
	require.Error(t, err)
}

func TestUsageCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.js"), []byte("import { useId } from 'react';\nuseId();\n"), 0o644))

	stdout, _, err := execute(t, "", "usage", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "useId")
	assert.Contains(t, stdout, "extract")
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "granular.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transform:\n  declaration: let\n"), 0o644))

	stdout, _, err := execute(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "declaration: let")
	assert.Contains(t, stdout, "respect_gitignore: true")
}
