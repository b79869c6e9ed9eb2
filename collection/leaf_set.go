package collection

import "github.com/hdsim/reactree/reaction"

// LeafSet is the composite bundle for a leaf model: its three collections
// are all Leaf collections, and reactions of every kind may be added to it.
type LeafSet struct {
	set
}

// Compile-time interface check.
var _ CompositeSet = (*LeafSet)(nil)

// NewLeafSet creates an empty leaf bundle with one empty Leaf collection
// per kind.
func NewLeafSet() *LeafSet {
	return &LeafSet{set: newSet(
		NewLeaf(reaction.KindObservation),
		NewLeaf(reaction.KindDiscreteUpdate),
		NewLeaf(reaction.KindUnrestrictedUpdate),
	)}
}

// ObservationLeaf narrows the observation collection to its leaf type.
// A LeafSet always constructs leaf collections, so the TYPE_MISMATCH error
// indicates a caller bug; the contract is checkable rather than assumed.
func (s *LeafSet) ObservationLeaf() (*Leaf, error) {
	return narrowLeaf("LeafSet.ObservationLeaf", s.observation)
}

// DiscreteUpdateLeaf narrows the discrete-update collection to its leaf type.
func (s *LeafSet) DiscreteUpdateLeaf() (*Leaf, error) {
	return narrowLeaf("LeafSet.DiscreteUpdateLeaf", s.discrete)
}

// UnrestrictedUpdateLeaf narrows the unrestricted-update collection to its
// leaf type.
func (s *LeafSet) UnrestrictedUpdateLeaf() (*Leaf, error) {
	return narrowLeaf("LeafSet.UnrestrictedUpdateLeaf", s.unrestricted)
}

func narrowLeaf(op string, c Collection) (*Leaf, error) {
	l, ok := c.(*Leaf)
	if !ok {
		return nil, newTypeMismatchError(op,
			"collection is not leaf-shaped", "leaf", variantName(c))
	}
	return l, nil
}
