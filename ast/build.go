package ast

// Constructors for synthesized nodes. Every constructor adds to the arena
// and returns the new id; children are attached in the order given.

func (a *Arena) synth(k Kind, field, text string, children ...NodeID) NodeID {
	return a.Add(Node{
		Kind:     k,
		Field:    field,
		Text:     text,
		Children: children,
		Start:    -1,
		End:      -1,
		Synth:    true,
	})
}

func (a *Arena) withField(id NodeID, field string) NodeID {
	if id != NoNode {
		a.nodes[id].Field = field
	}
	return id
}

// Identifier creates an identifier reference.
func (a *Arena) Identifier(name string) NodeID {
	return a.synth(KindIdentifier, "", name)
}

// StringLiteral creates a string literal holding value (unquoted).
func (a *Arena) StringLiteral(value string) NodeID {
	return a.synth(KindString, "", value)
}

// DefaultSpecifier creates the default binding of an import clause.
func (a *Arena) DefaultSpecifier(local string) NodeID {
	return a.synth(KindIdentifier, FieldDefault, local)
}

// NamespaceSpecifier creates `* as local`.
func (a *Arena) NamespaceSpecifier(local string) NodeID {
	return a.synth(KindNamespaceImport, "", "", a.Identifier(local))
}

// ImportSpecifier creates `imported` or `imported as local`.
func (a *Arena) ImportSpecifier(imported, local string) NodeID {
	children := []NodeID{a.withField(a.Identifier(imported), FieldName)}
	if local != imported {
		children = append(children, a.withField(a.Identifier(local), FieldAlias))
	}
	return a.synth(KindImportSpecifier, "", "", children...)
}

// ImportDeclaration creates an import of source binding binding (a default
// or namespace specifier, or NoNode) followed by the named specifiers.
func (a *Arena) ImportDeclaration(binding NodeID, specifiers []NodeID, source NodeID) NodeID {
	var clause []NodeID
	if binding != NoNode {
		clause = append(clause, binding)
	}
	if len(specifiers) > 0 {
		clause = append(clause, a.synth(KindNamedImports, "", "", specifiers...))
	}
	children := []NodeID{}
	if len(clause) > 0 {
		children = append(children, a.synth(KindImportClause, "", "", clause...))
	}
	children = append(children, a.withField(source, FieldSource))
	return a.synth(KindImportStatement, "", "", children...)
}

// Property creates one destructuring entry binding key to local.
func (a *Arena) Property(key, local string) NodeID {
	if key == local {
		return a.synth(KindShorthandPattern, "", local)
	}
	return a.synth(KindPairPattern, "", "",
		a.synth(KindPropertyIdentifier, FieldKey, key),
		a.withField(a.Identifier(local), FieldValue),
	)
}

// ObjectPattern creates `{ ...properties }`.
func (a *Arena) ObjectPattern(properties ...NodeID) NodeID {
	return a.synth(KindObjectPattern, "", "", properties...)
}

// VariableDeclaration creates `kind pattern = init;`. The var keyword maps to
// variable_declaration, const and let to lexical_declaration.
func (a *Arena) VariableDeclaration(kind string, pattern, init NodeID) NodeID {
	declarator := a.synth(KindVariableDeclarator, "", "",
		a.withField(pattern, FieldName),
		a.withField(init, FieldValue),
	)
	k := KindLexicalDeclaration
	if kind == "var" {
		k = KindVariableDeclaration
	}
	return a.synth(k, "", kind, declarator)
}

// ExpressionStatement creates `expr;`.
func (a *Arena) ExpressionStatement(expr NodeID) NodeID {
	return a.synth(KindExpressionStatement, "", "", expr)
}

// MemberExpression creates `object.property`.
func (a *Arena) MemberExpression(object, property string) NodeID {
	return a.synth(KindMemberExpression, "", "",
		a.withField(a.Identifier(object), FieldObject),
		a.synth(KindPropertyIdentifier, FieldProperty, property),
	)
}

// CallExpression creates `fn(args...)`.
func (a *Arena) CallExpression(fn NodeID, args ...NodeID) NodeID {
	return a.synth(KindCallExpression, "", "",
		a.withField(fn, FieldFunction),
		a.synth(KindArguments, "", "", args...),
	)
}

// JSXElement creates `<name>children</name>`, or `<name />` without children.
func (a *Arena) JSXElement(name string, children ...NodeID) NodeID {
	if len(children) == 0 {
		return a.synth(KindJSXSelfClosingElement, "", "", a.synth(KindJSXIdentifier, FieldName, name))
	}
	open := a.synth(KindJSXOpeningElement, "", "", a.synth(KindJSXIdentifier, FieldName, name))
	closing := a.synth(KindJSXClosingElement, "", "", a.synth(KindJSXIdentifier, FieldName, name))
	all := append([]NodeID{open}, children...)
	return a.synth(KindJSXElement, "", "", append(all, closing)...)
}

// JSXFragment creates `<>children</>`.
func (a *Arena) JSXFragment(children ...NodeID) NodeID {
	open := a.synth(KindJSXOpeningElement, "", "")
	closing := a.synth(KindJSXClosingElement, "", "")
	all := append([]NodeID{open}, children...)
	return a.synth(KindJSXElement, "", "", append(all, closing)...)
}

// Program creates the root node and sets it as the arena root.
func (a *Arena) Program(statements ...NodeID) NodeID {
	a.Root = a.synth(KindProgram, "", "", statements...)
	return a.Root
}
