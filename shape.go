package zipper

import "reflect"

// shape fixes how node values are interpreted: what counts as a branch,
// how its children are read, and how a branch is rebuilt from new
// children. The navigation and editing algorithms only ever go through a
// shape, so a different tree representation would slot in here.
type shape struct {
	isBranch func(node any) bool
	children func(node any) []any
	make     func(old any, children []any) any
}

// nodeShape is the sequence instantiation: any slice is a branch, its
// elements are its children, and a rebuilt branch is simply the new child
// sequence. []byte is excluded — it reads as a scalar blob, not a list of
// byte nodes.
var nodeShape = shape{
	isBranch: isSeq,
	children: seqChildren,
	make: func(_ any, children []any) any {
		if children == nil {
			children = []any{}
		}
		return children
	},
}

func isSeq(node any) bool {
	switch node.(type) {
	case []any:
		return true
	case nil, []byte:
		return false
	}
	return reflect.ValueOf(node).Kind() == reflect.Slice
}

// seqChildren returns the elements of a branch. A []any node is returned
// as is and treated read-only by all callers; other slice kinds are boxed
// into a fresh []any.
func seqChildren(node any) []any {
	if xs, ok := node.([]any); ok {
		return xs
	}
	rv := reflect.ValueOf(node)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
