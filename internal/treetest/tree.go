// Package treetest provides shared tree fixtures for tests: canonical
// composite-set constructions matching the shapes the package tests and
// golden files exercise.
package treetest

import (
	"fmt"

	"github.com/hdsim/reactree/collection"
	"github.com/hdsim/reactree/reaction"
)

// MixedTree builds the canonical two-level tree: a diagram root whose
// child 0 is a leaf bundle and whose child 1 is a diagram bundle with one
// leaf child. Returns the root and the two leaf bundles.
func MixedTree() (root *collection.DiagramSet, child0, grandchild *collection.LeafSet) {
	child0 = collection.NewLeafSet()
	grandchild = collection.NewLeafSet()
	return collection.NewDiagramSet(child0, collection.NewDiagramSet(grandchild)), child0, grandchild
}

// Populate fills the mixed tree with a deterministic reaction load: two
// observations on child 0 and one discrete update on the grandchild.
// Payloads are stable strings so snapshots of the tree are reproducible.
func Populate(child0, grandchild *collection.LeafSet) error {
	steps := []struct {
		add func(*reaction.Reaction) error
		r   *reaction.Reaction
	}{
		{child0.AddObservation, reaction.New(reaction.KindObservation, reaction.TriggerScheduled, "base/telemetry")},
		{child0.AddObservation, reaction.New(reaction.KindObservation, reaction.TriggerPerStep, "base/logging")},
		{grandchild.AddDiscreteUpdate, reaction.New(reaction.KindDiscreteUpdate, reaction.TriggerScheduled, "arm/counter")},
	}
	for i, s := range steps {
		if err := s.add(s.r); err != nil {
			return fmt.Errorf("populate step %d: %w", i, err)
		}
	}
	return nil
}
