package collection

import (
	"fmt"

	"github.com/hdsim/reactree/reaction"
)

// CompositeSet bundles exactly one collection per reaction kind behind one
// handle, so the full three-kind bundle can be merged, cleared, and queried
// uniformly at any tree level. Exactly two concrete variants exist: LeafSet,
// whose three collections are leaves, and DiagramSet, whose three
// collections are diagrams built over the sets of its children.
type CompositeSet interface {
	// Clear clears all three collections.
	Clear()

	// HasAny returns true iff any of the three collections has any reaction.
	HasAny() bool

	// HasObservation returns true iff the bundle holds one or more
	// observation reactions.
	HasObservation() bool

	// HasDiscreteUpdate returns true iff the bundle holds one or more
	// discrete-update reactions.
	HasDiscreteUpdate() bool

	// HasUnrestrictedUpdate returns true iff the bundle holds one or more
	// unrestricted-update reactions.
	HasUnrestrictedUpdate() bool

	// Concatenate appends other's content to this bundle, kind by kind.
	// A SHAPE_MISMATCH error surfaces if any one kind mismatches.
	Concatenate(other CompositeSet) error

	// ReplaceWith clears this bundle, then concatenates other's content
	// into it, kind by kind.
	ReplaceWith(other CompositeSet) error

	// Observation returns the observation collection. The handle is
	// mutable; consumers dispatching reactions must treat it as read-only.
	Observation() Collection

	// DiscreteUpdate returns the discrete-update collection.
	DiscreteUpdate() Collection

	// UnrestrictedUpdate returns the unrestricted-update collection.
	UnrestrictedUpdate() Collection

	// ByKind returns the collection holding the given kind.
	// Panics if kind is invalid.
	ByKind(kind reaction.Kind) Collection

	// AddObservation stores one observation reaction. Fails with
	// UNSUPPORTED_OPERATION on a diagram-shaped bundle. Panics if r is nil.
	AddObservation(r *reaction.Reaction) error

	// AddDiscreteUpdate stores one discrete-update reaction. Fails with
	// UNSUPPORTED_OPERATION on a diagram-shaped bundle. Panics if r is nil.
	AddDiscreteUpdate(r *reaction.Reaction) error

	// AddUnrestrictedUpdate stores one unrestricted-update reaction. Fails
	// with UNSUPPORTED_OPERATION on a diagram-shaped bundle. Panics if r
	// is nil.
	AddUnrestrictedUpdate(r *reaction.Reaction) error
}

// set is the shared three-collection bundle embedded by LeafSet and
// DiagramSet. The three collections are supplied at construction, are all
// of the same concrete variant, and are never individually replaced.
type set struct {
	observation  Collection
	discrete     Collection
	unrestricted Collection
}

// newSet wires the three kind collections. Panics if any is nil or bound
// to the wrong kind slot; construction with an invalid sub-collection is a
// fatal structural bug.
func newSet(observation, discrete, unrestricted Collection) set {
	check := func(c Collection, kind reaction.Kind) {
		if c == nil {
			panic(fmt.Sprintf("collection: composite set with nil %s collection", kind))
		}
		if c.Kind() != kind {
			panic(fmt.Sprintf("collection: composite set with %s collection in %s slot", c.Kind(), kind))
		}
	}
	check(observation, reaction.KindObservation)
	check(discrete, reaction.KindDiscreteUpdate)
	check(unrestricted, reaction.KindUnrestrictedUpdate)
	return set{observation: observation, discrete: discrete, unrestricted: unrestricted}
}

func (s *set) Clear() {
	s.observation.Clear()
	s.discrete.Clear()
	s.unrestricted.Clear()
}

func (s *set) HasAny() bool {
	return s.observation.HasAny() || s.discrete.HasAny() || s.unrestricted.HasAny()
}

func (s *set) HasObservation() bool { return s.observation.HasAny() }

func (s *set) HasDiscreteUpdate() bool { return s.discrete.HasAny() }

func (s *set) HasUnrestrictedUpdate() bool { return s.unrestricted.HasAny() }

func (s *set) Concatenate(other CompositeSet) error {
	if other == nil {
		panic("collection: Concatenate with nil composite set")
	}
	if err := s.observation.Concatenate(other.Observation()); err != nil {
		return err
	}
	if err := s.discrete.Concatenate(other.DiscreteUpdate()); err != nil {
		return err
	}
	return s.unrestricted.Concatenate(other.UnrestrictedUpdate())
}

func (s *set) ReplaceWith(other CompositeSet) error {
	s.Clear()
	return s.Concatenate(other)
}

func (s *set) Observation() Collection { return s.observation }

func (s *set) DiscreteUpdate() Collection { return s.discrete }

func (s *set) UnrestrictedUpdate() Collection { return s.unrestricted }

func (s *set) ByKind(kind reaction.Kind) Collection {
	switch kind {
	case reaction.KindObservation:
		return s.observation
	case reaction.KindDiscreteUpdate:
		return s.discrete
	case reaction.KindUnrestrictedUpdate:
		return s.unrestricted
	default:
		panic(fmt.Sprintf("collection: ByKind with invalid kind %d", int(kind)))
	}
}

// The typed adders delegate to the underlying collection, so the
// UNSUPPORTED_OPERATION of a diagram-shaped bundle propagates unchanged.

func (s *set) AddObservation(r *reaction.Reaction) error { return s.observation.Add(r) }

func (s *set) AddDiscreteUpdate(r *reaction.Reaction) error { return s.discrete.Add(r) }

func (s *set) AddUnrestrictedUpdate(r *reaction.Reaction) error { return s.unrestricted.Add(r) }
