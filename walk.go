package zipper

// Next moves to the next location of a pre-order walk: first child if the
// focus has one, else next sibling, else the next sibling of the nearest
// ancestor that has one. When the walk is exhausted it returns the end
// sentinel, and calling Next on the sentinel returns it unchanged.
func (l *Loc) Next() *Loc {
	if l.end {
		return l
	}
	if c := l.Down(); c != nil {
		return c
	}
	if r := l.Right(); r != nil {
		return r
	}
	loc := l
	for {
		up := loc.Up()
		if up == nil {
			return &Loc{node: loc.node, end: true}
		}
		if r := up.Right(); r != nil {
			return r
		}
		loc = up
	}
}

// Prev moves to the previous location of a pre-order walk: the rightmost
// leaf-most descendant of the left sibling when one exists, otherwise the
// parent. At the root (and on the end sentinel) it returns nil.
func (l *Loc) Prev() *Loc {
	if l.end {
		return nil
	}
	lf := l.Left()
	if lf == nil {
		return l.Up()
	}
	loc := lf
	for {
		child := loc.Down()
		if child == nil {
			return loc
		}
		loc = child.Rightmost()
	}
}
