package ast

import (
	"strconv"
	"strings"
)

// IsIdentifierReference reports whether id is an identifier occurrence,
// including property names. Tag names are not references.
func (a *Arena) IsIdentifierReference(id NodeID) bool {
	switch a.Kind(id) {
	case KindIdentifier, KindPropertyIdentifier, KindShorthandProperty, KindShorthandPattern:
		return true
	}
	return false
}

// IsImport reports whether id is an import statement.
func (a *Arena) IsImport(id NodeID) bool {
	return a.Kind(id) == KindImportStatement
}

// IsVariableDeclarator reports whether id is a variable declarator.
func (a *Arena) IsVariableDeclarator(id NodeID) bool {
	return a.Kind(id) == KindVariableDeclarator
}

// IsDeclaration reports whether id is a const, let or var statement.
func (a *Arena) IsDeclaration(id NodeID) bool {
	k := a.Kind(id)
	return k == KindLexicalDeclaration || k == KindVariableDeclaration
}

// tagName returns the name node of a jsx element or NoNode for a fragment.
func (a *Arena) tagName(id NodeID) NodeID {
	switch a.Kind(id) {
	case KindJSXSelfClosingElement:
		return a.ChildByField(id, FieldName)
	case KindJSXElement:
		open := a.FirstChild(id, KindJSXOpeningElement)
		if open == NoNode {
			return NoNode
		}
		return a.ChildByField(open, FieldName)
	}
	return NoNode
}

// IsElement reports whether id is a tag with a name, `<a/>` or `<a></a>`.
func (a *Arena) IsElement(id NodeID) bool {
	switch a.Kind(id) {
	case KindJSXSelfClosingElement:
		return true
	case KindJSXElement:
		return a.tagName(id) != NoNode
	}
	return false
}

// IsFragment reports whether id is the `<>...</>` shorthand.
func (a *Arena) IsFragment(id NodeID) bool {
	return a.Kind(id) == KindJSXElement && a.tagName(id) == NoNode
}

// ElementName returns the tag name of an element when it is a plain
// identifier. Member and namespaced tag names report false.
func (a *Arena) ElementName(id NodeID) (string, bool) {
	name := a.tagName(id)
	if a.Kind(name) != KindJSXIdentifier {
		return "", false
	}
	return a.Text(name), true
}

// GenerateUID returns a name derived from hint that no identifier in the file
// uses and that no earlier call returned: _hint, _hint2, _hint3, ...
func (a *Arena) GenerateUID(hint string) string {
	used := make(map[string]struct{})
	for _, n := range a.nodes {
		switch n.Kind {
		case KindIdentifier, KindShorthandProperty, KindShorthandPattern, KindJSXIdentifier:
			used[n.Text] = struct{}{}
		}
	}
	if a.uids == nil {
		a.uids = make(map[string]struct{})
	}

	base := "_" + strings.TrimLeft(hint, "_")
	for i := 1; ; i++ {
		name := base
		if i > 1 {
			name = base + strconv.Itoa(i)
		}
		if _, ok := used[name]; ok {
			continue
		}
		if _, ok := a.uids[name]; ok {
			continue
		}
		a.uids[name] = struct{}{}
		return name
	}
}
