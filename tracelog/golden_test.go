package tracelog

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/hdsim/reactree/collection"
	"github.com/hdsim/reactree/internal/treetest"
	"github.com/hdsim/reactree/reaction"
)

// Golden files pin the canonical snapshot serialization. Regenerate with:
//
//	go test ./tracelog -update
func TestSnapshotGolden_MixedTree(t *testing.T) {
	root, child0, grandchild := treetest.MixedTree()
	require.NoError(t, treetest.Populate(child0, grandchild))

	data, err := Snap(1, root).MarshalCanonical()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "mixed_tree_step", data)
}

func TestSnapshotGolden_ForcedLeaf(t *testing.T) {
	set := collection.NewLeafSet()
	require.NoError(t, set.AddObservation(reaction.NewForced(reaction.KindObservation)))

	data, err := Snap(2, set).MarshalCanonical()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "forced_leaf_step", data)
}
