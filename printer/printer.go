// Package printer turns an ast.Arena back into source text. Nodes read from
// source print verbatim; synthesized nodes are generated.
package printer

import (
	"bytes"
	"strconv"

	"github.com/hannajonsd/granular-imports/ast"
)

// Print renders the arena from its root.
func Print(a *ast.Arena) []byte {
	if a.Root == ast.NoNode {
		return nil
	}
	p := &printer{arena: a}
	p.print(a.Root)
	return p.buf.Bytes()
}

// PrintNode renders a single subtree.
func PrintNode(a *ast.Arena, id ast.NodeID) string {
	p := &printer{arena: a}
	p.print(id)
	return p.buf.String()
}

type printer struct {
	arena *ast.Arena
	buf   bytes.Buffer
}

func (p *printer) print(id ast.NodeID) {
	if id == ast.NoNode {
		return
	}
	if p.arena.Node(id).Synth {
		p.generate(id)
		return
	}
	p.verbatim(id)
}

// verbatim copies the node's span, substituting children as it goes so that
// replaced children print in place of the text they cover.
func (p *printer) verbatim(id ast.NodeID) {
	n := *p.arena.Node(id)
	src := p.arena.Source
	pos := n.Start

	for _, c := range n.Children {
		if c == ast.NoNode {
			continue
		}
		child := *p.arena.Node(c)
		if child.Start < 0 {
			p.print(c)
			continue
		}
		if child.Start > pos {
			p.buf.Write(src[pos:child.Start])
		}
		if child.Synth && child.Start == child.End {
			p.buf.WriteByte('\n')
		}
		p.print(c)
		if child.End > pos {
			pos = child.End
		}
	}
	if n.End > pos {
		p.buf.Write(src[pos:n.End])
	}
}

func (p *printer) generate(id ast.NodeID) {
	a := p.arena
	n := a.Node(id)
	children := a.Children(id)

	switch n.Kind {
	case ast.KindString:
		p.buf.WriteString(strconv.Quote(n.Text))
	case ast.KindImportStatement:
		p.buf.WriteString("import ")
		if clause := a.FirstChild(id, ast.KindImportClause); clause != ast.NoNode {
			p.print(clause)
			p.buf.WriteString(" from ")
		}
		p.print(a.ChildByField(id, ast.FieldSource))
		p.buf.WriteByte(';')
	case ast.KindImportClause, ast.KindArguments:
		if n.Kind == ast.KindArguments {
			p.buf.WriteByte('(')
		}
		p.join(children, ", ")
		if n.Kind == ast.KindArguments {
			p.buf.WriteByte(')')
		}
	case ast.KindNamedImports, ast.KindObjectPattern:
		if len(children) == 0 {
			p.buf.WriteString("{}")
			return
		}
		p.buf.WriteString("{ ")
		p.join(children, ", ")
		p.buf.WriteString(" }")
	case ast.KindImportSpecifier:
		p.print(a.ChildByField(id, ast.FieldName))
		if alias := a.ChildByField(id, ast.FieldAlias); alias != ast.NoNode {
			p.buf.WriteString(" as ")
			p.print(alias)
		}
	case ast.KindNamespaceImport:
		p.buf.WriteString("* as ")
		p.join(children, "")
	case ast.KindLexicalDeclaration, ast.KindVariableDeclaration:
		p.buf.WriteString(n.Text)
		p.buf.WriteByte(' ')
		p.join(children, ", ")
		p.buf.WriteByte(';')
	case ast.KindVariableDeclarator:
		p.print(a.ChildByField(id, ast.FieldName))
		if value := a.ChildByField(id, ast.FieldValue); value != ast.NoNode {
			p.buf.WriteString(" = ")
			p.print(value)
		}
	case ast.KindPairPattern:
		p.print(a.ChildByField(id, ast.FieldKey))
		p.buf.WriteString(": ")
		p.print(a.ChildByField(id, ast.FieldValue))
	case ast.KindExpressionStatement:
		p.join(children, "")
		p.buf.WriteByte(';')
	case ast.KindMemberExpression, ast.KindJSXMemberExpression:
		p.print(a.ChildByField(id, ast.FieldObject))
		p.buf.WriteByte('.')
		p.print(a.ChildByField(id, ast.FieldProperty))
	case ast.KindCallExpression:
		p.join(children, "")
	case ast.KindJSXSelfClosingElement:
		p.buf.WriteByte('<')
		p.print(a.ChildByField(id, ast.FieldName))
		p.buf.WriteString(" />")
	case ast.KindJSXOpeningElement:
		p.buf.WriteByte('<')
		p.print(a.ChildByField(id, ast.FieldName))
		p.buf.WriteByte('>')
	case ast.KindJSXClosingElement:
		p.buf.WriteString("</")
		p.print(a.ChildByField(id, ast.FieldName))
		p.buf.WriteByte('>')
	case ast.KindJSXElement:
		p.join(children, "")
	case ast.KindProgram:
		for _, c := range children {
			if c == ast.NoNode {
				continue
			}
			p.print(c)
			p.buf.WriteByte('\n')
		}
	default:
		if len(children) == 0 {
			p.buf.WriteString(n.Text)
			return
		}
		p.join(children, "")
	}
}

func (p *printer) join(ids []ast.NodeID, sep string) {
	first := true
	for _, id := range ids {
		if id == ast.NoNode {
			continue
		}
		if !first {
			p.buf.WriteString(sep)
		}
		first = false
		p.print(id)
	}
}
