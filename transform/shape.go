package transform

import "github.com/hannajonsd/granular-imports/ast"

// SpecifierKind is the closed set of import specifier variants.
type SpecifierKind uint8

const (
	DefaultSpecifier SpecifierKind = iota
	NamespaceSpecifier
	NamedSpecifier
)

// Specifier is one binding of an import declaration. Imported is only
// meaningful for named specifiers.
type Specifier struct {
	Kind     SpecifierKind
	Imported string
	Local    string
}

// Named returns the specifier `imported as local`.
func Named(imported, local string) Specifier {
	return Specifier{Kind: NamedSpecifier, Imported: imported, Local: local}
}

// ImportShape is what the rewriter needs to know about one declaration.
type ImportShape struct {
	Source     string
	Specifiers []Specifier
}

// Variable returns the default or namespace binding, or "" when the
// declaration has none. Only the first specifier can be such a binding.
func (s ImportShape) Variable() string {
	if len(s.Specifiers) == 0 {
		return ""
	}
	first := s.Specifiers[0]
	if first.Kind == DefaultSpecifier || first.Kind == NamespaceSpecifier {
		return first.Local
	}
	return ""
}

// Named returns the named specifiers in source order.
func (s ImportShape) Named() []Specifier {
	var named []Specifier
	for _, spec := range s.Specifiers {
		if spec.Kind == NamedSpecifier {
			named = append(named, spec)
		}
	}
	return named
}

// Imported returns the imported names of the named specifiers.
func (s ImportShape) Imported() []string {
	return importedNames(s.Named())
}

// Locals returns the local names of the named specifiers.
func (s ImportShape) Locals() []string {
	return localNames(s.Named())
}

func importedNames(specs []Specifier) []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Imported)
	}
	return names
}

func localNames(specs []Specifier) []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Local)
	}
	return names
}

// Import is an import declaration paired with its rewrite state.
type Import struct {
	Node  ast.NodeID
	Shape ImportShape
	State ast.ImportState
}

// Rewritten reports whether the rewriter already produced this declaration.
func (i Import) Rewritten() bool {
	return i.State == ast.ImportRewritten
}

// ReadImport reads the declaration at id.
func ReadImport(a *ast.Arena, id ast.NodeID) Import {
	imp := Import{Node: id, State: a.Node(id).Import}
	imp.Shape.Source = a.Text(a.ChildByField(id, ast.FieldSource))

	clause := a.FirstChild(id, ast.KindImportClause)
	for _, c := range a.Children(clause) {
		switch a.Kind(c) {
		case ast.KindIdentifier:
			imp.Shape.Specifiers = append(imp.Shape.Specifiers, Specifier{Kind: DefaultSpecifier, Local: a.Text(c)})
		case ast.KindNamespaceImport:
			local := a.Text(a.FirstChild(c, ast.KindIdentifier))
			imp.Shape.Specifiers = append(imp.Shape.Specifiers, Specifier{Kind: NamespaceSpecifier, Local: local})
		case ast.KindNamedImports:
			for _, s := range a.Children(c) {
				if a.Kind(s) != ast.KindImportSpecifier {
					continue
				}
				imported := a.Text(a.ChildByField(s, ast.FieldName))
				local := imported
				if alias := a.ChildByField(s, ast.FieldAlias); alias != ast.NoNode {
					local = a.Text(alias)
				}
				imp.Shape.Specifiers = append(imp.Shape.Specifiers, Named(imported, local))
			}
		}
	}
	return imp
}

// readDestructuring matches `kind { a, b: c } = namespace` at id and returns
// its properties as named specifiers.
func readDestructuring(a *ast.Arena, id ast.NodeID, namespace string) ([]Specifier, bool) {
	if namespace == "" || !a.IsDeclaration(id) {
		return nil, false
	}

	var declarators []ast.NodeID
	for _, c := range a.Children(id) {
		if a.IsVariableDeclarator(c) {
			declarators = append(declarators, c)
		}
	}
	if len(declarators) != 1 {
		return nil, false
	}

	pattern := a.ChildByField(declarators[0], ast.FieldName)
	init := a.ChildByField(declarators[0], ast.FieldValue)
	if a.Kind(pattern) != ast.KindObjectPattern {
		return nil, false
	}
	if a.Kind(init) != ast.KindIdentifier || a.Text(init) != namespace {
		return nil, false
	}

	var specs []Specifier
	for _, p := range a.Children(pattern) {
		switch a.Kind(p) {
		case ast.KindShorthandPattern:
			specs = append(specs, Named(a.Text(p), a.Text(p)))
		case ast.KindPairPattern:
			key := a.ChildByField(p, ast.FieldKey)
			value := a.ChildByField(p, ast.FieldValue)
			if a.Kind(key) != ast.KindPropertyIdentifier || a.Kind(value) != ast.KindIdentifier {
				return nil, false
			}
			specs = append(specs, Named(a.Text(key), a.Text(value)))
		case "comment":
		default:
			return nil, false
		}
	}
	return specs, true
}
