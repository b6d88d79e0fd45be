package printer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannajonsd/granular-imports/ast"
	"github.com/hannajonsd/granular-imports/parser"
)

func TestPrintRoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		"",
		"  // leading comment\nimport React from 'react';\n\n\n",
		"import React, { useState } from \"react\";\nexport const App = () => <div className=\"x\">{useState(0)}</div>;\n",
		"const f = () => <><A.B /><c:d /></>;\n",
	}

	p, err := parser.NewJavaScriptParser()
	require.NoError(t, err)
	defer p.Close()

	for _, src := range sources {
		result, err := p.Parse(context.Background(), "x.jsx", []byte(src))
		require.NoError(t, err)
		assert.Equal(t, src, string(Print(result.Arena)))
	}
}

func TestPrintReplacedStatements(t *testing.T) {
	t.Parallel()

	p, err := parser.NewJavaScriptParser()
	require.NoError(t, err)
	defer p.Close()

	result, err := p.Parse(context.Background(), "x.js", []byte("a;\n  b;\nc;\n"))
	require.NoError(t, err)
	a := result.Arena

	stmts := a.Children(a.Root)
	require.Len(t, stmts, 3)
	first := a.ExpressionStatement(a.Identifier("x"))
	second := a.ExpressionStatement(a.Identifier("y"))
	require.NoError(t, a.Replace(stmts[1], first, second))

	assert.Equal(t, "a;\n  x;\ny;\nc;\n", string(Print(a)))
}

func TestPrintSynthesized(t *testing.T) {
	t.Parallel()

	a := ast.NewArena(nil)
	imp := a.ImportDeclaration(
		a.DefaultSpecifier("_React"),
		[]ast.NodeID{a.ImportSpecifier("useState", "useState"), a.ImportSpecifier("useMemo", "memo")},
		a.StringLiteral("react"),
	)
	decl := a.VariableDeclaration("const",
		a.ObjectPattern(a.Property("createElement", "createElement"), a.Property("Fragment", "F")),
		a.Identifier("_React"),
	)
	a.Program(imp, decl)

	assert.Equal(t, "import _React, { useState, useMemo as memo } from \"react\";", PrintNode(a, imp))
	assert.Equal(t, "const { createElement, Fragment: F } = _React;", PrintNode(a, decl))
	assert.Equal(t, "{}", PrintNode(a, a.ObjectPattern()))
	assert.Equal(t, "import \"react\";", PrintNode(a, a.ImportDeclaration(ast.NoNode, nil, a.StringLiteral("react"))))
	assert.Equal(t, "import * as R from \"react\";", PrintNode(a, a.ImportDeclaration(a.NamespaceSpecifier("R"), nil, a.StringLiteral("react"))))
}

func TestPrintEmptyArena(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Print(ast.NewArena(nil)))
}
