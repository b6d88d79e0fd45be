package parser

import (
	"context"
	"errors"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/hannajonsd/granular-imports/ast"
)

// Sentinel errors returned by parsers.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrSyntax              = errors.New("syntax error")
)

// Parser defines the interface for language-specific source code parsers
type Parser interface {
	GetLanguage() string
	Close()
	ParseFile(filePath string) (*ParseResult, error)
	Parse(ctx context.Context, filePath string, source []byte) (*ParseResult, error)
}

// BaseParser provides common functionality for all language parsers
type BaseParser struct {
	parser   *sitter.Parser
	language *sitter.Language
	langName string
}

// ParseResult contains the converted tree and metadata for a source file
type ParseResult struct {
	Arena    *ast.Arena
	Source   []byte
	Language string
	FilePath string
}
