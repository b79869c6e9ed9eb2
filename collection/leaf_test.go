package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdsim/reactree/reaction"
)

func TestLeaf_AddPreservesInsertionOrder(t *testing.T) {
	l := NewLeaf(reaction.KindObservation)
	assert.False(t, l.HasAny())
	assert.Equal(t, 0, l.Len())

	r1 := reaction.New(reaction.KindObservation, reaction.TriggerScheduled, "first")
	r2 := reaction.New(reaction.KindObservation, reaction.TriggerPerStep, "second")
	require.NoError(t, l.Add(r1))
	require.NoError(t, l.Add(r2))

	assert.True(t, l.HasAny())
	got := l.Reactions()
	require.Len(t, got, 2)
	assert.Same(t, r1, got[0])
	assert.Same(t, r2, got[1])
}

func TestLeaf_ClearThenHasAnyIsFalse(t *testing.T) {
	l := NewLeaf(reaction.KindDiscreteUpdate)
	require.NoError(t, l.Add(reaction.New(reaction.KindDiscreteUpdate, reaction.TriggerScheduled, nil)))
	require.True(t, l.HasAny())

	l.Clear()
	assert.False(t, l.HasAny())
	assert.Equal(t, 0, l.Len())
}

func TestLeaf_AddNilReactionPanics(t *testing.T) {
	l := NewLeaf(reaction.KindObservation)
	assert.Panics(t, func() { _ = l.Add(nil) })
}

func TestLeaf_AddWrongKindPanics(t *testing.T) {
	l := NewLeaf(reaction.KindObservation)
	r := reaction.New(reaction.KindDiscreteUpdate, reaction.TriggerScheduled, nil)
	assert.Panics(t, func() { _ = l.Add(r) })
}

func TestLeaf_ConcatenateClonesAndAppends(t *testing.T) {
	dst := NewLeaf(reaction.KindObservation)
	require.NoError(t, dst.Add(reaction.New(reaction.KindObservation, reaction.TriggerScheduled, "a")))

	src := NewLeaf(reaction.KindObservation)
	srcReaction := reaction.New(reaction.KindObservation, reaction.TriggerPerStep, "b")
	require.NoError(t, src.Add(srcReaction))

	require.NoError(t, dst.Concatenate(src))

	require.Equal(t, 2, dst.Len())
	appended := dst.Reactions()[1]
	assert.NotSame(t, srcReaction, appended, "concatenate must clone, not alias")
	assert.Equal(t, srcReaction.ID(), appended.ID())
	assert.Equal(t, srcReaction.Trigger(), appended.Trigger())

	// src is unmodified and independently clearable.
	require.Equal(t, 1, src.Len())
	src.Clear()
	assert.Equal(t, 2, dst.Len())
}

func TestLeaf_ConcatenateTwiceAppendsTwoCopies(t *testing.T) {
	dst := NewLeaf(reaction.KindUnrestrictedUpdate)
	src := NewLeaf(reaction.KindUnrestrictedUpdate)
	require.NoError(t, src.Add(reaction.New(reaction.KindUnrestrictedUpdate, reaction.TriggerScheduled, 1)))
	require.NoError(t, src.Add(reaction.New(reaction.KindUnrestrictedUpdate, reaction.TriggerScheduled, 2)))

	require.NoError(t, dst.Concatenate(src))
	require.NoError(t, dst.Concatenate(src))

	require.Equal(t, 4, dst.Len())
	ids := func(l *Leaf) []string {
		var out []string
		for _, r := range l.Reactions() {
			out = append(out, r.ID())
		}
		return out
	}
	srcIDs := ids(src)
	assert.Equal(t, append(append([]string{}, srcIDs...), srcIDs...), ids(dst))
	assert.Equal(t, 2, src.Len(), "source is never mutated")
}

func TestLeaf_ConcatenateVariantMismatch(t *testing.T) {
	l := NewLeaf(reaction.KindObservation)
	d := NewDiagram(reaction.KindObservation, 1)
	d.AttachOwned(0, NewLeaf(reaction.KindObservation))

	err := l.Concatenate(d)
	require.Error(t, err)
	assert.True(t, IsShapeMismatch(err))
	assert.False(t, l.HasAny())
}

func TestLeaf_ConcatenateKindMismatch(t *testing.T) {
	l := NewLeaf(reaction.KindObservation)
	other := NewLeaf(reaction.KindDiscreteUpdate)

	err := l.Concatenate(other)
	require.Error(t, err)
	assert.True(t, IsShapeMismatch(err))
}

func TestLeaf_ReplaceWith(t *testing.T) {
	dst := NewLeaf(reaction.KindObservation)
	require.NoError(t, dst.Add(reaction.New(reaction.KindObservation, reaction.TriggerScheduled, "stale")))

	src := NewLeaf(reaction.KindObservation)
	r1 := reaction.New(reaction.KindObservation, reaction.TriggerPerStep, "x")
	r2 := reaction.New(reaction.KindObservation, reaction.TriggerForced, nil)
	require.NoError(t, src.Add(r1))
	require.NoError(t, src.Add(r2))

	require.NoError(t, dst.ReplaceWith(src))

	require.Equal(t, 2, dst.Len())
	assert.Equal(t, r1.ID(), dst.Reactions()[0].ID())
	assert.Equal(t, r2.ID(), dst.Reactions()[1].ID())
	assert.Equal(t, 2, src.Len(), "source is unchanged")
}

func TestNewForcedLeaf(t *testing.T) {
	l := NewForcedLeaf(reaction.KindDiscreteUpdate)

	require.Equal(t, 1, l.Len())
	r := l.Reactions()[0]
	assert.Equal(t, reaction.KindDiscreteUpdate, r.Kind())
	assert.Equal(t, reaction.TriggerForced, r.Trigger())
	assert.Nil(t, r.Payload())
}

func TestNewLeaf_InvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() { NewLeaf(reaction.Kind(0)) })
}
