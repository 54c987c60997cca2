package zipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceAndReconstruct(t *testing.T) {
	l := New(sample())
	inner := mustRight(t, mustDown(t, l))

	got := inner.Replace([]any{9}).Root()
	assert.Equal(t, []any{1, []any{9}, 4}, got)
}

func TestReplaceAtRoot(t *testing.T) {
	l := New(sample())
	assert.Equal(t, "swapped", l.Replace("swapped").Root())
}

func TestEdit(t *testing.T) {
	l := New([]any{1, 2, 3})
	mid := mustRight(t, mustDown(t, l))
	got := mid.Edit(func(n any) any { return n.(int) * 10 }).Root()
	assert.Equal(t, []any{1, 20, 3}, got)
}

func TestInsertRightOrdering(t *testing.T) {
	// [1 [2 3] 4] -> insert 3.5 right of 2 -> [1 [2 3.5 3] 4]
	l := New(sample())
	two := mustDown(t, mustRight(t, mustDown(t, l)))
	require.Equal(t, 2, two.Node())

	ins, err := two.InsertRight(3.5)
	require.NoError(t, err)
	assert.Equal(t, 2, ins.Node()) // cursor stays put

	up := ins.Up().Up()
	require.NotNil(t, up)
	assert.Equal(t, []any{1, []any{2, 3.5, 3}, 4}, up.Node())
	assert.Equal(t, []any{1, []any{2, 3.5, 3}, 4}, ins.Root())
}

func TestInsertLeft(t *testing.T) {
	l := New([]any{2, 3})
	two := mustDown(t, l)
	ins, err := two.InsertLeft(1)
	require.NoError(t, err)
	assert.Equal(t, 2, ins.Node())
	assert.Equal(t, []any{1, 2, 3}, ins.Root())

	prev := ins.Left()
	require.NotNil(t, prev)
	assert.Equal(t, 1, prev.Node())
}

func TestInsertSiblingAtTopFails(t *testing.T) {
	l := New(sample())
	_, err := l.InsertLeft(0)
	assert.ErrorIs(t, err, ErrTopLevel)
	_, err = l.InsertRight(5)
	assert.ErrorIs(t, err, ErrTopLevel)
}

func TestInsertChildAppendChild(t *testing.T) {
	l := New([]any{2, 3})

	ins, err := l.InsertChild(1)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, ins.Root())

	app, err := l.AppendChild(4)
	require.NoError(t, err)
	assert.Equal(t, []any{2, 3, 4}, app.Root())

	// Original location is untouched by either insertion.
	assert.Equal(t, []any{2, 3}, l.Root())
}

func TestChildInsertionOnLeafFails(t *testing.T) {
	leaf := mustDown(t, New([]any{1}))
	_, err := leaf.InsertChild(0)
	assert.ErrorIs(t, err, ErrNotBranch)
	_, err = leaf.AppendChild(0)
	assert.ErrorIs(t, err, ErrNotBranch)
}

func TestInsertChildIntoEmptyBranch(t *testing.T) {
	l := New([]any{})
	ins, err := l.AppendChild("only")
	require.NoError(t, err)
	assert.Equal(t, []any{"only"}, ins.Root())
}

func TestRemoveMovesToPreorderPredecessor(t *testing.T) {
	// [1 2 3], remove 2 -> cursor on 1, tree [1 3].
	l := New([]any{1, 2, 3})
	two := mustRight(t, mustDown(t, l))

	loc, err := two.Remove()
	require.NoError(t, err)
	assert.Equal(t, 1, loc.Node())
	assert.Equal(t, []any{1, 3}, loc.Root())
}

func TestRemoveDrillsIntoLeftSubtree(t *testing.T) {
	// Removing 4 from [[1 [2 3]] 4] must land on 3, the node that
	// directly precedes 4 in a pre-order walk.
	l := New([]any{[]any{1, []any{2, 3}}, 4})
	four := mustRight(t, mustDown(t, l))
	require.Equal(t, 4, four.Node())

	loc, err := four.Remove()
	require.NoError(t, err)
	assert.Equal(t, 3, loc.Node())
	assert.Equal(t, []any{[]any{1, []any{2, 3}}}, loc.Root())
}

func TestRemoveFirstChildFocusesParent(t *testing.T) {
	// No left sibling: the rebuilt parent becomes the focus. At depth one
	// the parent derives purely from the ancestor stack.
	l := New([]any{1, 2, 3})
	one := mustDown(t, l)

	loc, err := one.Remove()
	require.NoError(t, err)
	assert.Equal(t, []any{2, 3}, loc.Node())
	assert.Nil(t, loc.Path())
	assert.Equal(t, []any{2, 3}, loc.Root())
}

func TestRemoveFirstChildDeeper(t *testing.T) {
	l := New(sample())
	two := mustDown(t, mustRight(t, mustDown(t, l)))

	loc, err := two.Remove()
	require.NoError(t, err)
	assert.Equal(t, []any{3}, loc.Node())
	assert.Equal(t, []any{1, []any{3}, 4}, loc.Root())
}

func TestRemoveRootFails(t *testing.T) {
	_, err := New(sample()).Remove()
	assert.ErrorIs(t, err, ErrRemoveRoot)
}

func TestRemoveOnlyChildLeavesEmptyBranch(t *testing.T) {
	l := New([]any{[]any{1}})
	one := mustDown(t, mustDown(t, l))

	loc, err := one.Remove()
	require.NoError(t, err)
	assert.Equal(t, []any{}, loc.Node())
	assert.Equal(t, []any{[]any{}}, loc.Root())
}
