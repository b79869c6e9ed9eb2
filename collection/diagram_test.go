package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdsim/reactree/reaction"
)

// twoLeafDiagram builds a diagram with two owned leaf children.
func twoLeafDiagram(kind reaction.Kind) (*Diagram, *Leaf, *Leaf) {
	d := NewDiagram(kind, 2)
	l0 := NewLeaf(kind)
	l1 := NewLeaf(kind)
	d.AttachOwned(0, l0)
	d.AttachOwned(1, l1)
	return d, l0, l1
}

func TestDiagram_ChildCount(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		d := NewDiagram(reaction.KindObservation, n)
		assert.Equal(t, n, d.ChildCount())
	}
}

func TestDiagram_NegativeChildCountPanics(t *testing.T) {
	assert.Panics(t, func() { NewDiagram(reaction.KindObservation, -1) })
}

func TestDiagram_AddAlwaysUnsupported(t *testing.T) {
	for _, n := range []int{0, 3} {
		d := NewDiagram(reaction.KindObservation, n)
		err := d.Add(reaction.New(reaction.KindObservation, reaction.TriggerScheduled, nil))
		require.Error(t, err)
		assert.True(t, IsUnsupportedOperation(err))
	}
}

func TestDiagram_AddNilReactionPanics(t *testing.T) {
	d := NewDiagram(reaction.KindObservation, 1)
	assert.Panics(t, func() { _ = d.Add(nil) })
}

func TestDiagram_AttachPreconditions(t *testing.T) {
	d := NewDiagram(reaction.KindObservation, 2)
	l := NewLeaf(reaction.KindObservation)

	assert.Panics(t, func() { d.AttachOwned(0, nil) })
	assert.Panics(t, func() { d.AttachExternal(1, nil) })
	assert.Panics(t, func() { d.AttachOwned(-1, l) })
	assert.Panics(t, func() { d.AttachOwned(2, l) })
	assert.Panics(t, func() { d.AttachExternal(0, NewLeaf(reaction.KindDiscreteUpdate)) }, "kind disagreement is fatal at attach time")

	assert.NotPanics(t, func() { d.AttachOwned(0, l) })
	assert.Same(t, l, d.Child(0))
	assert.Nil(t, d.Child(1))
}

func TestDiagram_OwnsChild(t *testing.T) {
	d := NewDiagram(reaction.KindObservation, 2)
	external := NewLeaf(reaction.KindObservation)
	d.AttachOwned(0, NewLeaf(reaction.KindObservation))
	d.AttachExternal(1, external)

	assert.True(t, d.OwnsChild(0))
	assert.False(t, d.OwnsChild(1))
	assert.Panics(t, func() { d.OwnsChild(2) })
}

func TestDiagram_ClearAndHasAnyRecurse(t *testing.T) {
	d, l0, l1 := twoLeafDiagram(reaction.KindObservation)
	assert.False(t, d.HasAny())

	require.NoError(t, l1.Add(reaction.New(reaction.KindObservation, reaction.TriggerScheduled, nil)))
	assert.True(t, d.HasAny())

	d.Clear()
	assert.False(t, d.HasAny())
	assert.False(t, l0.HasAny())
	assert.False(t, l1.HasAny())
}

func TestDiagram_NestedClearReachesEveryDepth(t *testing.T) {
	inner, innerLeaf, _ := twoLeafDiagram(reaction.KindDiscreteUpdate)
	outer := NewDiagram(reaction.KindDiscreteUpdate, 2)
	outerLeaf := NewLeaf(reaction.KindDiscreteUpdate)
	outer.AttachOwned(0, inner)
	outer.AttachOwned(1, outerLeaf)

	require.NoError(t, innerLeaf.Add(reaction.New(reaction.KindDiscreteUpdate, reaction.TriggerScheduled, nil)))
	require.NoError(t, outerLeaf.Add(reaction.New(reaction.KindDiscreteUpdate, reaction.TriggerPerStep, nil)))
	require.True(t, outer.HasAny())

	outer.Clear()
	assert.False(t, outer.HasAny())
	assert.False(t, innerLeaf.HasAny())
	assert.False(t, outerLeaf.HasAny())
}

func TestDiagram_ConcatenateChildwiseInOrder(t *testing.T) {
	dst, dst0, dst1 := twoLeafDiagram(reaction.KindObservation)
	src, src0, src1 := twoLeafDiagram(reaction.KindObservation)

	ra := reaction.New(reaction.KindObservation, reaction.TriggerScheduled, "a")
	rb := reaction.New(reaction.KindObservation, reaction.TriggerScheduled, "b")
	require.NoError(t, src0.Add(ra))
	require.NoError(t, src1.Add(rb))

	require.NoError(t, dst.Concatenate(src))

	require.Equal(t, 1, dst0.Len())
	require.Equal(t, 1, dst1.Len())
	assert.Equal(t, ra.ID(), dst0.Reactions()[0].ID())
	assert.Equal(t, rb.ID(), dst1.Reactions()[0].ID())

	// Source subtree is untouched.
	assert.Equal(t, 1, src0.Len())
	assert.Equal(t, 1, src1.Len())
}

func TestDiagram_ConcatenateChildCountMismatchLeavesBothUnchanged(t *testing.T) {
	three := NewDiagram(reaction.KindObservation, 3)
	for i := 0; i < 3; i++ {
		three.AttachOwned(i, NewLeaf(reaction.KindObservation))
	}
	two, two0, _ := twoLeafDiagram(reaction.KindObservation)
	require.NoError(t, two0.Add(reaction.New(reaction.KindObservation, reaction.TriggerScheduled, nil)))

	err := three.Concatenate(two)
	require.Error(t, err)
	assert.True(t, IsShapeMismatch(err))
	assert.False(t, three.HasAny())
	assert.Equal(t, 1, Len(two))

	err = two.Concatenate(three)
	require.Error(t, err)
	assert.True(t, IsShapeMismatch(err))
	assert.Equal(t, 1, Len(two))
}

func TestDiagram_ConcatenateVariantMismatch(t *testing.T) {
	d, _, _ := twoLeafDiagram(reaction.KindObservation)
	err := d.Concatenate(NewLeaf(reaction.KindObservation))
	require.Error(t, err)
	assert.True(t, IsShapeMismatch(err))
}

func TestDiagram_ChildIndexOutOfRangePanics(t *testing.T) {
	d := NewDiagram(reaction.KindObservation, 1)
	assert.Panics(t, func() { d.Child(-1) })
	assert.Panics(t, func() { d.Child(1) })
}

func TestWalk_DispatchOrder(t *testing.T) {
	inner, inner0, inner1 := twoLeafDiagram(reaction.KindObservation)
	outer := NewDiagram(reaction.KindObservation, 2)
	outerLeaf := NewLeaf(reaction.KindObservation)
	outer.AttachOwned(0, outerLeaf)
	outer.AttachOwned(1, inner)

	r1 := reaction.New(reaction.KindObservation, reaction.TriggerScheduled, 1)
	r2 := reaction.New(reaction.KindObservation, reaction.TriggerScheduled, 2)
	r3 := reaction.New(reaction.KindObservation, reaction.TriggerScheduled, 3)
	r4 := reaction.New(reaction.KindObservation, reaction.TriggerScheduled, 4)
	require.NoError(t, outerLeaf.Add(r1))
	require.NoError(t, outerLeaf.Add(r2))
	require.NoError(t, inner0.Add(r3))
	require.NoError(t, inner1.Add(r4))

	var ids []string
	var paths [][]int
	Walk(outer, func(path []int, r *reaction.Reaction) bool {
		ids = append(ids, r.ID())
		paths = append(paths, append([]int{}, path...))
		return true
	})

	assert.Equal(t, []string{r1.ID(), r2.ID(), r3.ID(), r4.ID()}, ids)
	assert.Equal(t, [][]int{{0}, {0}, {1, 0}, {1, 1}}, paths)
	assert.Equal(t, 4, Len(outer))
}

func TestWalk_StopsEarly(t *testing.T) {
	l := NewLeaf(reaction.KindObservation)
	require.NoError(t, l.Add(reaction.New(reaction.KindObservation, reaction.TriggerScheduled, nil)))
	require.NoError(t, l.Add(reaction.New(reaction.KindObservation, reaction.TriggerScheduled, nil)))

	seen := 0
	done := Walk(l, func([]int, *reaction.Reaction) bool {
		seen++
		return false
	})
	assert.False(t, done)
	assert.Equal(t, 1, seen)
}

func TestSameShape(t *testing.T) {
	leafA := NewLeaf(reaction.KindObservation)
	leafB := NewLeaf(reaction.KindDiscreteUpdate)
	assert.True(t, SameShape(leafA, leafB), "kind is not part of shape")

	dA, _, _ := twoLeafDiagram(reaction.KindObservation)
	dB, _, _ := twoLeafDiagram(reaction.KindUnrestrictedUpdate)
	assert.True(t, SameShape(dA, dB))
	assert.False(t, SameShape(dA, leafA))

	dC := NewDiagram(reaction.KindObservation, 3)
	for i := 0; i < 3; i++ {
		dC.AttachOwned(i, NewLeaf(reaction.KindObservation))
	}
	assert.False(t, SameShape(dA, dC))
}
