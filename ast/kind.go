package ast

// Kind names a node type. Values follow the tree-sitter JavaScript grammar;
// tag names are given their own kinds so they are never read as references.
type Kind string

const (
	KindProgram             Kind = "program"
	KindImportStatement     Kind = "import_statement"
	KindImportClause        Kind = "import_clause"
	KindNamedImports        Kind = "named_imports"
	KindNamespaceImport     Kind = "namespace_import"
	KindImportSpecifier     Kind = "import_specifier"
	KindIdentifier          Kind = "identifier"
	KindPropertyIdentifier  Kind = "property_identifier"
	KindShorthandProperty   Kind = "shorthand_property_identifier"
	KindShorthandPattern    Kind = "shorthand_property_identifier_pattern"
	KindString              Kind = "string"
	KindMemberExpression    Kind = "member_expression"
	KindCallExpression      Kind = "call_expression"
	KindArguments           Kind = "arguments"
	KindExpressionStatement Kind = "expression_statement"
	KindLexicalDeclaration  Kind = "lexical_declaration"
	KindVariableDeclaration Kind = "variable_declaration"
	KindVariableDeclarator  Kind = "variable_declarator"
	KindObjectPattern       Kind = "object_pattern"
	KindPairPattern         Kind = "pair_pattern"

	KindJSXElement            Kind = "jsx_element"
	KindJSXSelfClosingElement Kind = "jsx_self_closing_element"
	KindJSXOpeningElement     Kind = "jsx_opening_element"
	KindJSXClosingElement     Kind = "jsx_closing_element"
	KindJSXIdentifier         Kind = "jsx_identifier"
	KindJSXMemberExpression   Kind = "jsx_member_expression"
	KindJSXNamespaceName      Kind = "jsx_namespace_name"
	KindJSXAttribute          Kind = "jsx_attribute"
	KindJSXExpression         Kind = "jsx_expression"
	KindJSXText               Kind = "jsx_text"
)

// Field names used to tag a child's role in its parent.
const (
	FieldName     = "name"
	FieldAlias    = "alias"
	FieldDefault  = "default"
	FieldSource   = "source"
	FieldObject   = "object"
	FieldProperty = "property"
	FieldKey      = "key"
	FieldValue    = "value"
	FieldFunction = "function"
)
