package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannajonsd/granular-imports/parser"
	"github.com/hannajonsd/granular-imports/transform"
)

func newRunner(opts Options) *Runner {
	if opts.Transform == (transform.Options{}) {
		opts.Transform = transform.DefaultOptions()
	}
	return New(opts, nil)
}

func TestRewriteExtractsUsedNames(t *testing.T) {
	t.Parallel()

	src := "import React, { useState } from 'react';\n" +
		"const App = () => <div>{useState(0)}</div>;\n"

	result := newRunner(Options{}).Rewrite(context.Background(), "App.jsx", []byte(src))
	require.NoError(t, result.Err)

	want := "import React from 'react';\n" +
		"const { useState, createElement } = React;\n" +
		"const App = () => <div>{useState(0)}</div>;\n"
	assert.True(t, result.Changed)
	assert.Equal(t, want, string(result.Output))
	require.Len(t, result.Imports, 1)
	assert.Equal(t, "React", result.Imports[0].Namespace)
}

func TestRewriteIsIdempotent(t *testing.T) {
	t.Parallel()

	sources := map[string]string{
		"named.jsx": "import React, { useState, useEffect } from 'react';\n" +
			"export const App = () => {\n" +
			"  useEffect(() => {}, []);\n" +
			"  return <><Card value={useState(1)[0]} /></>;\n" +
			"};\n",
		"namespace.jsx": "import * as React from \"react\";\nconst el = <a.b />;\n",
		"bare.js":       "import { memo } from 'react';\nexport default memo(() => null);\n",
	}

	thresholds := []transform.Extract{transform.ExtractAll, transform.ExtractAtLeast(2)}
	for name, src := range sources {
		for _, extract := range thresholds {
			opts := transform.DefaultOptions()
			opts.Extract = extract
			runner := newRunner(Options{Transform: opts})

			first := runner.Rewrite(context.Background(), name, []byte(src))
			require.NoError(t, first.Err, name)

			second := runner.Rewrite(context.Background(), name, first.Output)
			require.NoError(t, second.Err, name)
			assert.Equal(t, string(first.Output), string(second.Output), "%s extract=%s", name, extract)
			assert.False(t, second.Changed, name)
		}
	}
}

func TestRewriteNormalizesMemberAccess(t *testing.T) {
	t.Parallel()

	src := "import React from 'react';\nReact.createElement('div');\n"

	result := newRunner(Options{}).Rewrite(context.Background(), "el.js", []byte(src))
	require.NoError(t, result.Err)

	want := "import React from 'react';\n" +
		"const { createElement } = React;\n" +
		"createElement('div');\n"
	assert.Equal(t, want, string(result.Output))
	assert.Equal(t, 1, result.Normalized)
}

func TestRewriteSkipsMemberInitializers(t *testing.T) {
	t.Parallel()

	src := "import React from 'react';\n" +
		"const x = React.createElement('a', null);\n" +
		"const y = React.Fragment;\n"

	result := newRunner(Options{}).Rewrite(context.Background(), "el.js", []byte(src))
	require.NoError(t, result.Err)

	want := "import React from 'react';\n" +
		"const { createElement, Fragment } = React;\n" +
		"const x = createElement('a', null);\n" +
		"const y = React.Fragment;\n"
	assert.Equal(t, want, string(result.Output))
	assert.Equal(t, 1, result.Normalized)
}

func TestRewriteIgnoresAttributeNames(t *testing.T) {
	t.Parallel()

	src := "import React, { key } from 'react';\nconst el = <div key={1} />;\n"

	result := newRunner(Options{}).Rewrite(context.Background(), "el.jsx", []byte(src))
	require.NoError(t, result.Err)

	want := "import React from 'react';\n" +
		"const { createElement } = React;\n" +
		"const el = <div key={1} />;\n"
	assert.Equal(t, want, string(result.Output))
	require.Len(t, result.Imports, 1)
	assert.Equal(t, 0, result.Imports[0].Usage.Count("key"))
}

func TestRewriteLeavesOtherModulesAlone(t *testing.T) {
	t.Parallel()

	src := "import { render } from 'react-dom';\nrender(null);\n"

	result := newRunner(Options{}).Rewrite(context.Background(), "main.js", []byte(src))
	require.NoError(t, result.Err)
	assert.False(t, result.Changed)
	assert.Equal(t, src, string(result.Output))
	assert.Empty(t, result.Imports)
}

func TestRewriteReportsParseErrors(t *testing.T) {
	t.Parallel()

	runner := newRunner(Options{})

	result := runner.Rewrite(context.Background(), "broken.jsx", []byte("import { from;"))
	require.ErrorIs(t, result.Err, parser.ErrSyntax)

	result = runner.Rewrite(context.Background(), "style.css", []byte("a {}"))
	require.ErrorIs(t, result.Err, parser.ErrUnsupportedFileType)
}

func TestRewriteProducesPatch(t *testing.T) {
	t.Parallel()

	src := "import { useState } from 'react';\nuseState();\n"

	result := newRunner(Options{Diff: true}).Rewrite(context.Background(), "hook.js", []byte(src))
	require.NoError(t, result.Err)
	assert.Contains(t, result.Patch, "--- a/hook.js\n+++ b/hook.js\n")
	assert.Contains(t, result.Patch, "-import { useState } from 'react';\n")
	assert.Contains(t, result.Patch, "+const { useState } = _React;\n")
	assert.Contains(t, result.Patch, " useState();\n")
}

func TestFindSourceFilesRespectsIgnores(t *testing.T) {
	t.Parallel()

	root := filepath.Join("testdata", "app")
	files, err := newRunner(Options{RespectGitignore: true}).FindSourceFiles([]string{root})
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "src", "App.jsx"),
		filepath.Join(root, "src", "Counter.jsx"),
		filepath.Join(root, "src", "keep.bundle.js"),
		filepath.Join(root, "src", "util.js"),
	}
	assert.Equal(t, want, files)
}

func TestFindSourceFilesWithoutGitignore(t *testing.T) {
	t.Parallel()

	root := filepath.Join("testdata", "app")
	files, err := newRunner(Options{}).FindSourceFiles([]string{root, filepath.Join(root, "src", "util.js")})
	require.NoError(t, err)

	assert.Contains(t, files, filepath.Join(root, "generated", "out.js"))
	assert.Contains(t, files, filepath.Join(root, "src", "app.bundle.js"))
	assert.NotContains(t, files, filepath.Join(root, "node_modules", "lib", "index.js"))
	assert.NotContains(t, files, filepath.Join(root, ".cache", "x.js"))

	count := 0
	for _, f := range files {
		if strings.HasSuffix(f, "util.js") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestFindSourceFilesMissingPath(t *testing.T) {
	t.Parallel()

	_, err := newRunner(Options{}).FindSourceFiles([]string{filepath.Join("testdata", "missing")})
	require.Error(t, err)
}

func TestRunOverFixtures(t *testing.T) {
	t.Parallel()

	summary, err := newRunner(Options{RespectGitignore: true}).Run(context.Background(), []string{filepath.Join("testdata", "app")})
	require.NoError(t, err)

	require.Len(t, summary.Results, 4)
	assert.Equal(t, 2, summary.Changed)
	assert.Equal(t, 0, summary.Failed)

	byName := make(map[string]FileResult)
	for _, r := range summary.Results {
		byName[filepath.Base(r.Path)] = r
		assert.False(t, r.Written)
	}

	app := byName["App.jsx"]
	assert.True(t, strings.HasPrefix(string(app.Output),
		"import React from 'react';\nconst { useState, createElement, Fragment } = React;\n\nexport function App() {"))

	counter := byName["Counter.jsx"]
	assert.True(t, strings.HasPrefix(string(counter.Output),
		"import R from \"react\";\nconst { createElement } = R;\n"))

	assert.False(t, byName["keep.bundle.js"].Changed)
	assert.False(t, byName["util.js"].Changed)
}

func TestProcessFileWritesInPlace(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "hook.jsx")
	src := "import React, { useMemo } from 'react';\nuseMemo();\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o640))

	runner := newRunner(Options{Write: true})
	result := runner.ProcessFile(context.Background(), path)
	require.NoError(t, result.Err)
	assert.True(t, result.Written)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(result.Output), string(written))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())

	again := runner.ProcessFile(context.Background(), path)
	require.NoError(t, again.Err)
	assert.False(t, again.Changed)
	assert.False(t, again.Written)
}

func TestRunCountsFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.js"), []byte("export {};\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.js"), []byte("import { from;"), 0o644))

	summary, err := newRunner(Options{}).Run(context.Background(), []string{dir})
	require.NoError(t, err)
	assert.Len(t, summary.Results, 2)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Changed)
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(Options{}).Run(ctx, []string{filepath.Join("testdata", "app")})
	require.ErrorIs(t, err, context.Canceled)
}
