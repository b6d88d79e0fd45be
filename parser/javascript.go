// parser/javascript.go - Tree-sitter front end producing an ast.Arena
package parser

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/hannajonsd/granular-imports/ast"
)

type JavaScriptParser struct {
	BaseParser
}

func NewJavaScriptParser() (*JavaScriptParser, error) {
	parser := sitter.NewParser()
	language := javascript.GetLanguage()
	parser.SetLanguage(language)

	return &JavaScriptParser{
		BaseParser: BaseParser{
			parser:   parser,
			language: language,
			langName: "javascript",
		},
	}, nil
}

func (p *JavaScriptParser) ParseFile(filePath string) (*ParseResult, error) {
	source, err := readSource(filePath)
	if err != nil {
		return nil, err
	}
	return p.Parse(context.Background(), filePath, source)
}

// Parse converts source into an arena. Only named children are kept; the
// printer restores punctuation and whitespace from the source gaps.
func (p *JavaScriptParser) Parse(ctx context.Context, filePath string, source []byte) (*ParseResult, error) {
	tree, err := p.parseTree(ctx, filePath, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	arena := ast.NewArena(source)
	arena.Root = p.convert(arena, tree.RootNode(), source, false)
	// The root span excludes leading and trailing trivia; widen it so
	// printing reproduces the whole file.
	root := arena.Node(arena.Root)
	root.Start, root.End = 0, len(source)

	return &ParseResult{
		Arena:    arena,
		Source:   source,
		Language: p.langName,
		FilePath: filePath,
	}, nil
}

func (p *JavaScriptParser) convert(arena *ast.Arena, node *sitter.Node, source []byte, inTag bool) ast.NodeID {
	kind := ast.Kind(node.Type())
	owner := isTagOwner(kind)

	named := NamedChildren(node)
	children := make([]ast.NodeID, 0, len(named))
	tagged := false
	for i, child := range named {
		childTag := inTag
		if owner && i == 0 && isTagName(child.Type()) {
			childTag = true
			tagged = true
		}
		// Attribute names are markup, not references.
		if kind == ast.KindJSXAttribute && i == 0 {
			childTag = true
		}
		children = append(children, p.convert(arena, child, source, childTag))
	}

	if inTag {
		kind = tagKind(kind)
	}

	n := ast.Node{
		Kind:     kind,
		Children: children,
		Start:    int(node.StartByte()),
		End:      int(node.EndByte()),
	}
	switch {
	case kind == ast.KindString:
		n.Text = ExtractStringValue(node, source)
	case kind == ast.KindLexicalDeclaration || kind == ast.KindVariableDeclaration:
		n.Text = node.Child(0).Type()
	case len(children) == 0:
		n.Text = string(source[n.Start:n.End])
	}

	id := arena.Add(n)
	if tagged {
		arena.Node(children[0]).Field = ast.FieldName
	}
	assignFields(arena, kind, children)
	return id
}

// assignFields tags children with their role. Roles are positional over the
// non-comment children, matching the grammar's field layout.
func assignFields(arena *ast.Arena, kind ast.Kind, children []ast.NodeID) {
	roles := make([]ast.NodeID, 0, len(children))
	for _, c := range children {
		if arena.Kind(c) != "comment" {
			roles = append(roles, c)
		}
	}
	if len(roles) == 0 {
		return
	}
	set := func(id ast.NodeID, field string) {
		arena.Node(id).Field = field
	}
	first, last := roles[0], roles[len(roles)-1]

	switch kind {
	case ast.KindImportStatement:
		for _, c := range roles {
			if arena.Kind(c) == ast.KindString {
				set(c, ast.FieldSource)
			}
		}
	case ast.KindImportClause:
		for _, c := range roles {
			if arena.Kind(c) == ast.KindIdentifier {
				set(c, ast.FieldDefault)
			}
		}
	case ast.KindImportSpecifier:
		set(first, ast.FieldName)
		if len(roles) > 1 {
			set(roles[1], ast.FieldAlias)
		}
	case ast.KindMemberExpression, ast.KindJSXMemberExpression:
		set(first, ast.FieldObject)
		if len(roles) > 1 {
			set(last, ast.FieldProperty)
		}
	case ast.KindVariableDeclarator:
		set(first, ast.FieldName)
		if len(roles) > 1 {
			set(roles[1], ast.FieldValue)
		}
	case ast.KindPairPattern:
		set(first, ast.FieldKey)
		if len(roles) > 1 {
			set(last, ast.FieldValue)
		}
	case ast.KindCallExpression:
		set(first, ast.FieldFunction)
	}
}

func isTagOwner(kind ast.Kind) bool {
	switch kind {
	case ast.KindJSXOpeningElement, ast.KindJSXClosingElement, ast.KindJSXSelfClosingElement:
		return true
	}
	return false
}

func isTagName(nodeType string) bool {
	switch nodeType {
	case "identifier", "member_expression", "nested_identifier", "jsx_namespace_name":
		return true
	}
	return false
}

// tagKind maps a node inside a tag name onto its tag-specific kind.
func tagKind(kind ast.Kind) ast.Kind {
	switch kind {
	case ast.KindIdentifier, ast.KindPropertyIdentifier:
		return ast.KindJSXIdentifier
	case ast.KindMemberExpression, "nested_identifier":
		return ast.KindJSXMemberExpression
	}
	return kind
}
