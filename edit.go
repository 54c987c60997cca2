package zipper

import "github.com/agentic-research/zipper/internal/seq"

// Replace swaps the focused node for n without moving the cursor. The
// level is marked changed so every ancestor gets rebuilt on ascent. At
// the root there is nothing to propagate and the new node simply becomes
// the tree. Replacing the end sentinel has no meaning and returns it
// unchanged.
func (l *Loc) Replace(n any) *Loc {
	if l.end {
		return l
	}
	if l.path == nil {
		return &Loc{node: n}
	}
	return &Loc{node: n, path: l.path.withChanged()}
}

// Edit replaces the focused node with f applied to it.
func (l *Loc) Edit(f func(node any) any) *Loc {
	return l.Replace(f(l.node))
}

// InsertLeft inserts item as the immediate left sibling of the focus.
// The cursor does not move. It fails with ErrTopLevel at the root, where
// no sibling list exists.
func (l *Loc) InsertLeft(item any) (*Loc, error) {
	if l.end || l.path == nil {
		return nil, ErrTopLevel
	}
	p := l.path
	return &Loc{
		node: l.node,
		path: &Path{
			left:      seq.Push(p.left, item),
			right:     p.right,
			parent:    p.parent,
			ancestors: p.ancestors,
			changed:   true,
		},
	}, nil
}

// InsertRight inserts item as the immediate right sibling of the focus,
// mirroring InsertLeft.
func (l *Loc) InsertRight(item any) (*Loc, error) {
	if l.end || l.path == nil {
		return nil, ErrTopLevel
	}
	p := l.path
	return &Loc{
		node: l.node,
		path: &Path{
			left:      p.left,
			right:     seq.PushFront(item, p.right),
			parent:    p.parent,
			ancestors: p.ancestors,
			changed:   true,
		},
	}, nil
}

// InsertChild inserts item as the first child of the focused branch,
// without moving the cursor. It fails with ErrNotBranch on a leaf.
func (l *Loc) InsertChild(item any) (*Loc, error) {
	if l.end || !nodeShape.isBranch(l.node) {
		return nil, ErrNotBranch
	}
	kids := seq.PushFront(item, nodeShape.children(l.node))
	return l.Replace(nodeShape.make(l.node, kids)), nil
}

// AppendChild inserts item as the last child of the focused branch.
func (l *Loc) AppendChild(item any) (*Loc, error) {
	if l.end || !nodeShape.isBranch(l.node) {
		return nil, ErrNotBranch
	}
	kids := seq.Push(nodeShape.children(l.node), item)
	return l.Replace(nodeShape.make(l.node, kids)), nil
}

// Remove deletes the focused node. The cursor lands on the location that
// would have directly preceded the focus in a pre-order walk: the
// rightmost leaf-most descendant of the left sibling when one exists,
// otherwise the rebuilt (now shorter) parent. Removing the root fails
// with ErrRemoveRoot.
func (l *Loc) Remove() (*Loc, error) {
	if l.end || l.path == nil {
		return nil, ErrRemoveRoot
	}
	p := l.path
	if len(p.left) > 0 {
		loc := &Loc{
			node: seq.Last(p.left),
			path: &Path{
				left:      seq.Pop(p.left),
				right:     p.right,
				parent:    p.parent,
				ancestors: p.ancestors,
				changed:   true,
			},
		}
		for {
			child := loc.Down()
			if child == nil {
				return loc, nil
			}
			loc = child.Rightmost()
		}
	}
	parent := nodeShape.make(seq.Last(p.ancestors), p.right)
	if p.parent == nil {
		return &Loc{node: parent}, nil
	}
	return &Loc{node: parent, path: p.parent.withChanged()}, nil
}
