// Package zipper implements a functional cursor over immutable trees,
// after Huet's zipper. A location pairs the focused node with enough
// sibling and ancestor bookkeeping to rebuild the whole tree, so a caller
// can walk and edit a tree locally without ever copying it wholesale.
//
// Nodes are plain Go values. Any slice (except []byte) is a branch and its
// elements are its children; everything else is a leaf. Rebuilding a branch
// yields the new child sequence itself as a []any. This matches JSON-style
// data, where arrays nest and scalars terminate.
//
// Every operation returns a new location; the input is never modified.
// Prior locations stay valid and keep denoting the tree as it was, so two
// goroutines may navigate from the same location without coordination.
package zipper

import "github.com/agentic-research/zipper/internal/seq"

// Path records one level of context: the siblings flanking the focus, the
// enclosing level, and the stack of ancestor nodes needed to rebuild
// parents on ascent. A nil Path means the location is the tree root.
type Path struct {
	left      []any // left siblings, nearest last
	right     []any // right siblings, nearest first
	parent    *Path // enclosing level, nil at the top
	ancestors []any // ancestor nodes root-first, immediate parent last
	changed   bool  // an edit at or below this level forces rebuild on ascent
}

// withChanged returns the path with its changed flag set, sharing every
// other field. Used to propagate an edit upward without rebuilding yet.
func (p *Path) withChanged() *Path {
	if p.changed {
		return p
	}
	q := *p
	q.changed = true
	return &q
}

// Loc is a cursor position: the focused node plus its Path. The zero-ish
// end form (end == true) is the terminal state of a pre-order walk; only
// IsEnd and Root are meaningful on it.
type Loc struct {
	node any
	path *Path
	end  bool
}

// New returns a location focused on root, with no enclosing context.
func New(root any) *Loc {
	return &Loc{node: root}
}

// Node returns the focused node.
func (l *Loc) Node() any {
	return l.node
}

// IsBranch reports whether the focused node can have children.
func (l *Loc) IsBranch() bool {
	return nodeShape.isBranch(l.node)
}

// Children returns a copy of the focused node's child sequence. It fails
// with ErrNotBranch on a leaf.
func (l *Loc) Children() ([]any, error) {
	if !nodeShape.isBranch(l.node) {
		return nil, ErrNotBranch
	}
	return seq.Clone(nodeShape.children(l.node)), nil
}

// Path returns the chain of ancestor nodes above the focus, root first.
// It is nil at the root.
func (l *Loc) Path() []any {
	if l.path == nil {
		return nil
	}
	return seq.Clone(l.path.ancestors)
}

// Lefts returns the left siblings of the focus, leftmost first.
func (l *Loc) Lefts() []any {
	if l.path == nil {
		return nil
	}
	return seq.Clone(l.path.left)
}

// Rights returns the right siblings of the focus, nearest first.
func (l *Loc) Rights() []any {
	if l.path == nil {
		return nil
	}
	return seq.Clone(l.path.right)
}

// IsEnd reports whether a pre-order walk has moved past the last node.
func (l *Loc) IsEnd() bool {
	return l.end
}
