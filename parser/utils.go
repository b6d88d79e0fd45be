package parser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// SupportedExtensions lists the file extensions CreateParser accepts.
var SupportedExtensions = []string{".js", ".jsx", ".mjs", ".cjs"}

// CreateParser creates the appropriate parser based on file extension
func CreateParser(filePath string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	switch ext {
	case ".js", ".jsx", ".mjs", ".cjs":
		return NewJavaScriptParser()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}
}

// ExtractStringValue removes quotes from string literals in AST nodes
func ExtractStringValue(node *sitter.Node, source []byte) string {
	text := string(source[node.StartByte():node.EndByte()])
	if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') {
		text = text[1 : len(text)-1] // Remove surrounding quotes
	}
	return text
}

// NamedChildren returns the named children of node in document order
func NamedChildren(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// readSource loads a file for parsing
func readSource(filePath string) ([]byte, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return source, nil
}

// parseTree runs tree-sitter over source and rejects trees with error nodes
func (bp *BaseParser) parseTree(ctx context.Context, filePath string, source []byte) (*sitter.Tree, error) {
	tree, err := bp.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filePath, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("failed to parse file %s", filePath)
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, fmt.Errorf("failed to parse file %s: %w", filePath, ErrSyntax)
	}
	return tree, nil
}

// GetLanguage returns the language name for this parser
func (bp *BaseParser) GetLanguage() string {
	return bp.langName
}

func (bp *BaseParser) Close() {
	if bp.parser != nil {
		bp.parser.Close()
	}
}
