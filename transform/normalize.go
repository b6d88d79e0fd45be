package transform

import "github.com/hannajonsd/granular-imports/ast"

// NormalizeMember rewrites React.createElement and React.Fragment at the
// cursor to the bare member name. An access that initializes a declarator
// is left alone.
func NormalizeMember(c *Cursor) (bool, error) {
	a := c.Arena()
	id := c.Node()
	if a.Kind(id) != ast.KindMemberExpression {
		return false, nil
	}

	object := a.ChildByField(id, ast.FieldObject)
	if a.Kind(object) != ast.KindIdentifier || a.Text(object) != NamespaceName {
		return false, nil
	}
	if a.IsVariableDeclarator(c.Parent()) {
		return false, nil
	}
	name := a.Text(a.ChildByField(id, ast.FieldProperty))
	if name != CreateElement && name != Fragment {
		return false, nil
	}

	if err := c.Replace(a.Identifier(name)); err != nil {
		return false, err
	}
	return true, nil
}
