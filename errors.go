package zipper

import "errors"

var (
	// ErrTopLevel indicates a sibling operation at the top of the tree,
	// where no enclosing level exists to insert into.
	ErrTopLevel = errors.New("no parent to insert into")

	// ErrRemoveRoot indicates an attempt to remove the root node.
	ErrRemoveRoot = errors.New("cannot remove the root")

	// ErrNotBranch indicates a child operation on a leaf node.
	ErrNotBranch = errors.New("node is not a branch")
)
