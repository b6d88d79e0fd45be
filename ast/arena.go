// Package ast holds the syntax tree the rewriter operates on: an arena of
// nodes addressed by index, plus the constructors and predicates over it.
package ast

import (
	"errors"
	"fmt"
)

// ErrNoRoot is returned when an arena without a program root is used.
var ErrNoRoot = errors.New("arena has no root node")

// NodeID addresses a node inside an Arena.
type NodeID int

// NoNode is the empty placeholder. Walks skip it.
const NoNode NodeID = -1

// ImportState records whether an import statement has been rewritten.
type ImportState uint8

const (
	ImportPending ImportState = iota
	ImportRewritten
)

// Node is one syntax tree node. Nodes taken from source carry the byte span
// they cover; synthesized nodes have Synth set and a span only when they
// replace source text.
type Node struct {
	Kind     Kind
	Field    string
	Text     string
	Children []NodeID
	Parent   NodeID
	Start    int
	End      int
	Synth    bool
	Import   ImportState
}

// Arena owns all nodes of one file.
type Arena struct {
	Source []byte
	Root   NodeID

	nodes []Node
	uids  map[string]struct{}
}

// NewArena creates an empty arena over source.
func NewArena(source []byte) *Arena {
	return &Arena{Source: source, Root: NoNode}
}

// Add appends n and returns its id. Children of n get their Parent set.
func (a *Arena) Add(n Node) NodeID {
	id := NodeID(len(a.nodes))
	n.Parent = NoNode
	a.nodes = append(a.nodes, n)
	for _, c := range n.Children {
		if c != NoNode {
			a.nodes[c].Parent = id
		}
	}
	return id
}

// Len reports the number of nodes allocated in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Node returns the node for id. The pointer is invalidated by Add.
func (a *Arena) Node(id NodeID) *Node {
	return &a.nodes[id]
}

// Kind returns the kind of id, or the empty kind for NoNode.
func (a *Arena) Kind(id NodeID) Kind {
	if id == NoNode {
		return ""
	}
	return a.nodes[id].Kind
}

// Text returns the text of id, or "" for NoNode.
func (a *Arena) Text(id NodeID) string {
	if id == NoNode {
		return ""
	}
	return a.nodes[id].Text
}

// Parent returns the parent of id.
func (a *Arena) Parent(id NodeID) NodeID {
	if id == NoNode {
		return NoNode
	}
	return a.nodes[id].Parent
}

// Children returns the child list of id. Callers must not retain it across
// replacements.
func (a *Arena) Children(id NodeID) []NodeID {
	if id == NoNode {
		return nil
	}
	return a.nodes[id].Children
}

// ChildByField returns the first child of id whose Field is field.
func (a *Arena) ChildByField(id NodeID, field string) NodeID {
	for _, c := range a.Children(id) {
		if c != NoNode && a.nodes[c].Field == field {
			return c
		}
	}
	return NoNode
}

// FirstChild returns the first child of id with kind k.
func (a *Arena) FirstChild(id NodeID, k Kind) NodeID {
	for _, c := range a.Children(id) {
		if c != NoNode && a.nodes[c].Kind == k {
			return c
		}
	}
	return NoNode
}

// IndexOf returns the position of child in parent's child list, or -1.
func (a *Arena) IndexOf(parent, child NodeID) int {
	for i, c := range a.Children(parent) {
		if c == child {
			return i
		}
	}
	return -1
}

// Replace swaps id for the given nodes in its parent's child list.
func (a *Arena) Replace(id NodeID, with ...NodeID) error {
	parent := a.Parent(id)
	if parent == NoNode {
		return fmt.Errorf("replace node %d: node has no parent", id)
	}
	i := a.IndexOf(parent, id)
	if i < 0 {
		return fmt.Errorf("replace node %d: not a child of %d", id, parent)
	}
	return a.ReplaceRange(parent, i, i, with...)
}

// ReplaceRange replaces the children of parent at positions from..to
// (inclusive) with the given nodes. The replacements inherit the byte span
// of the replaced run: the first covers it, the rest are zero-width at its
// end so the printer emits them in sequence.
func (a *Arena) ReplaceRange(parent NodeID, from, to int, with ...NodeID) error {
	children := a.Children(parent)
	if from < 0 || to >= len(children) || from > to {
		return fmt.Errorf("replace range [%d,%d] out of bounds for node %d", from, to, parent)
	}

	start, end := -1, -1
	for _, c := range children[from : to+1] {
		if c == NoNode {
			continue
		}
		n := a.nodes[c]
		if start < 0 || n.Start < start {
			start = n.Start
		}
		if n.End > end {
			end = n.End
		}
		a.nodes[c].Parent = NoNode
	}

	for i, w := range with {
		n := &a.nodes[w]
		n.Parent = parent
		if i == 0 {
			n.Start, n.End = start, end
		} else {
			n.Start, n.End = end, end
		}
	}

	replaced := make([]NodeID, 0, len(children)-(to-from+1)+len(with))
	replaced = append(replaced, children[:from]...)
	replaced = append(replaced, with...)
	replaced = append(replaced, children[to+1:]...)
	a.nodes[parent].Children = replaced
	return nil
}

// Clone returns a structural deep copy of the arena. The source bytes are
// shared; they are never mutated.
func (a *Arena) Clone() *Arena {
	c := &Arena{
		Source: a.Source,
		Root:   a.Root,
		nodes:  make([]Node, len(a.nodes)),
	}
	for i, n := range a.nodes {
		if n.Children != nil {
			n.Children = append([]NodeID(nil), n.Children...)
		}
		c.nodes[i] = n
	}
	if a.uids != nil {
		c.uids = make(map[string]struct{}, len(a.uids))
		for k := range a.uids {
			c.uids[k] = struct{}{}
		}
	}
	return c
}

// Walk visits id and its descendants in document order. Returning false from
// fn skips the node's children.
func (a *Arena) Walk(id NodeID, fn func(NodeID) bool) {
	if id == NoNode {
		return
	}
	if !fn(id) {
		return
	}
	for _, c := range a.nodes[id].Children {
		a.Walk(c, fn)
	}
}
