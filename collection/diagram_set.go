package collection

import (
	"fmt"

	"github.com/hdsim/reactree/reaction"
)

// DiagramSet is the composite bundle for a composite model. It owns the
// bundles of its children and wires three Diagram collections over them,
// one per kind, each referencing the matching-kind collection inside each
// child. The diagram-level collections alias the exact storage already
// owned by the children; nothing is duplicated.
type DiagramSet struct {
	set
	children []CompositeSet
}

// Compile-time interface check.
var _ CompositeSet = (*DiagramSet)(nil)

// NewDiagramSet builds a diagram bundle over the given child bundles, in
// order, transferring ownership of the children in. Panics if any child is
// nil, or if a child's three collections disagree in shape: a bundle whose
// kind collections were built from different trees is structurally broken,
// and the violation surfaces here at construction rather than at first use.
func NewDiagramSet(children ...CompositeSet) *DiagramSet {
	n := len(children)
	observation := NewDiagram(reaction.KindObservation, n)
	discrete := NewDiagram(reaction.KindDiscreteUpdate, n)
	unrestricted := NewDiagram(reaction.KindUnrestrictedUpdate, n)

	for i, child := range children {
		if child == nil {
			panic(fmt.Sprintf("collection: NewDiagramSet with nil child %d", i))
		}
		obs := child.Observation()
		if !SameShape(obs, child.DiscreteUpdate()) || !SameShape(obs, child.UnrestrictedUpdate()) {
			panic(fmt.Sprintf("collection: NewDiagramSet child %d has kind collections of different shapes", i))
		}
		// External references: the child bundle keeps ownership of its
		// collections, and this set keeps ownership of the child bundle.
		observation.AttachExternal(i, obs)
		discrete.AttachExternal(i, child.DiscreteUpdate())
		unrestricted.AttachExternal(i, child.UnrestrictedUpdate())
	}

	return &DiagramSet{
		set:      newSet(observation, discrete, unrestricted),
		children: children,
	}
}

// ChildCount returns the number of child bundles.
func (s *DiagramSet) ChildCount() int { return len(s.children) }

// Child returns the full composite bundle of the child at index.
// Panics if index is out of range.
func (s *DiagramSet) Child(index int) CompositeSet {
	if index < 0 || index >= len(s.children) {
		panic(fmt.Sprintf("collection: Child index %d out of range [0,%d)", index, len(s.children)))
	}
	return s.children[index]
}
