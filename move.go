package zipper

import "github.com/agentic-research/zipper/internal/seq"

// Down moves to the first child of the focus. It returns nil when the
// focus is a leaf or a childless branch.
func (l *Loc) Down() *Loc {
	if l.end || !nodeShape.isBranch(l.node) {
		return nil
	}
	kids := nodeShape.children(l.node)
	if len(kids) == 0 {
		return nil
	}
	var anc []any
	if l.path != nil {
		anc = l.path.ancestors
	}
	return &Loc{
		node: kids[0],
		path: &Path{
			right:     seq.Rest(kids),
			parent:    l.path,
			ancestors: seq.Push(anc, l.node),
		},
	}
}

// Up moves to the parent of the focus, or nil at the top. When nothing at
// or below this level was edited the parent node is returned untouched;
// otherwise the parent is rebuilt from the current sibling sequence and
// the edit propagates to the enclosing level.
func (l *Loc) Up() *Loc {
	if l.end || l.path == nil {
		return nil
	}
	p := l.path
	parent := seq.Last(p.ancestors)
	if !p.changed {
		return &Loc{node: parent, path: p.parent}
	}
	rebuilt := nodeShape.make(parent, seq.Concat3(p.left, l.node, p.right))
	if p.parent == nil {
		return &Loc{node: rebuilt}
	}
	return &Loc{node: rebuilt, path: p.parent.withChanged()}
}

// Right moves to the next sibling, or nil if none exists.
func (l *Loc) Right() *Loc {
	if l.end || l.path == nil || len(l.path.right) == 0 {
		return nil
	}
	p := l.path
	return &Loc{
		node: p.right[0],
		path: &Path{
			left:      seq.Push(p.left, l.node),
			right:     seq.Rest(p.right),
			parent:    p.parent,
			ancestors: p.ancestors,
			changed:   p.changed,
		},
	}
}

// Left moves to the previous sibling, or nil if none exists.
func (l *Loc) Left() *Loc {
	if l.end || l.path == nil || len(l.path.left) == 0 {
		return nil
	}
	p := l.path
	return &Loc{
		node: seq.Last(p.left),
		path: &Path{
			left:      seq.Pop(p.left),
			right:     seq.PushFront(l.node, p.right),
			parent:    p.parent,
			ancestors: p.ancestors,
			changed:   p.changed,
		},
	}
}

// Leftmost jumps to the first sibling at this level. Already being there
// (or being at the top) returns the location unchanged, never nil.
func (l *Loc) Leftmost() *Loc {
	if l.end || l.path == nil || len(l.path.left) == 0 {
		return l
	}
	p := l.path
	return &Loc{
		node: p.left[0],
		path: &Path{
			right:     seq.Concat3(seq.Rest(p.left), l.node, p.right),
			parent:    p.parent,
			ancestors: p.ancestors,
			changed:   p.changed,
		},
	}
}

// Rightmost jumps to the last sibling at this level, mirroring Leftmost.
func (l *Loc) Rightmost() *Loc {
	if l.end || l.path == nil || len(l.path.right) == 0 {
		return l
	}
	p := l.path
	return &Loc{
		node: seq.Last(p.right),
		path: &Path{
			left:      seq.Concat3(p.left, l.node, seq.Pop(p.right)),
			parent:    p.parent,
			ancestors: p.ancestors,
			changed:   p.changed,
		},
	}
}

// Root ascends to the top of the tree, rebuilding any edited levels on
// the way, and returns the resulting root node. Unedited ascents cost a
// pointer move each; each edited level is rebuilt exactly once.
func (l *Loc) Root() any {
	loc := l
	for {
		if loc.end {
			return loc.node
		}
		up := loc.Up()
		if up == nil {
			return loc.node
		}
		loc = up
	}
}
