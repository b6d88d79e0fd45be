package transform

import (
	"fmt"

	"github.com/hannajonsd/granular-imports/ast"
)

// Cursor points the handlers at one node of the arena being transformed.
type Cursor struct {
	arena *ast.Arena
	node  ast.NodeID
}

// NewCursor points at id.
func NewCursor(a *ast.Arena, id ast.NodeID) *Cursor {
	return &Cursor{arena: a, node: id}
}

func (c *Cursor) Arena() *ast.Arena { return c.arena }
func (c *Cursor) Node() ast.NodeID  { return c.node }
func (c *Cursor) Parent() ast.NodeID {
	return c.arena.Parent(c.node)
}

// Index is the node's position among its siblings.
func (c *Cursor) Index() int {
	return c.arena.IndexOf(c.Parent(), c.node)
}

// Sibling returns the sibling offset positions away, or NoNode.
func (c *Cursor) Sibling(offset int) ast.NodeID {
	siblings := c.arena.Children(c.Parent())
	i := c.Index() + offset
	if c.Index() < 0 || i < 0 || i >= len(siblings) {
		return ast.NoNode
	}
	return siblings[i]
}

// GenerateUID returns a file-unique identifier derived from hint.
func (c *Cursor) GenerateUID(hint string) string {
	return c.arena.GenerateUID(hint)
}

// Replace swaps the node for with.
func (c *Cursor) Replace(with ...ast.NodeID) error {
	return c.arena.Replace(c.node, with...)
}

// ReplaceSiblings swaps the node and the count-1 siblings after it for with.
func (c *Cursor) ReplaceSiblings(count int, with ...ast.NodeID) error {
	i := c.Index()
	if i < 0 {
		return fmt.Errorf("node %d is detached", c.node)
	}
	return c.arena.ReplaceRange(c.Parent(), i, i+count-1, with...)
}

// Result collects what a pass did to one unit.
type Result struct {
	Imports    []ImportReport
	Normalized int
}

// Changed reports whether the pass touched the tree.
func (r Result) Changed() bool {
	return len(r.Imports) > 0 || r.Normalized > 0
}

// Pass dispatches import declarations and member accesses of one unit in
// document order.
type Pass struct {
	arena    *ast.Arena
	rewriter *Rewriter
	result   Result
}

// Transform runs one pass over the unit's arena.
func Transform(a *ast.Arena, unit *Unit, opts Options) (Result, error) {
	if a == nil || a.Root == ast.NoNode {
		return Result{}, ast.ErrNoRoot
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if unit == nil {
		unit = NewUnit("")
	}

	p := &Pass{arena: a, rewriter: NewRewriter(opts, unit)}
	if err := p.visit(a.Root); err != nil {
		return p.result, fmt.Errorf("transform %s: %w", unit.Filename, err)
	}
	return p.result, nil
}

// visit descends into id. A replaced child is revisited at its position so the
// replacement nodes are seen too.
func (p *Pass) visit(id ast.NodeID) error {
	replaced, err := p.enter(id)
	if err != nil || replaced {
		return err
	}

	for i := 0; i < len(p.arena.Children(id)); i++ {
		child := p.arena.Children(id)[i]
		if child == ast.NoNode {
			continue
		}
		if err := p.visit(child); err != nil {
			return err
		}
		if current := p.arena.Children(id); i < len(current) && current[i] != child {
			i--
		}
	}
	return nil
}

func (p *Pass) enter(id ast.NodeID) (bool, error) {
	c := NewCursor(p.arena, id)

	switch {
	case p.arena.IsImport(id):
		report, ok, err := p.rewriter.RewriteImport(c)
		if err != nil || !ok {
			return false, err
		}
		p.result.Imports = append(p.result.Imports, report)
		return true, nil
	case p.arena.Kind(id) == ast.KindMemberExpression:
		ok, err := NormalizeMember(c)
		if err != nil || !ok {
			return false, err
		}
		p.result.Normalized++
		return true, nil
	}
	return false, nil
}
