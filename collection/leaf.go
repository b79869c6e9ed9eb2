package collection

import (
	"fmt"

	"github.com/hdsim/reactree/reaction"
)

// Leaf is the concrete collection variant for a leaf model: an ordered,
// owned sequence of reactions. Insertion order is semantically significant;
// it is the order reaction handlers will later run in.
type Leaf struct {
	kind      reaction.Kind
	reactions []*reaction.Reaction
}

// Compile-time interface check.
var _ Collection = (*Leaf)(nil)

// NewLeaf creates an empty leaf collection for the given kind.
// Panics if kind is not a defined reaction kind.
func NewLeaf(kind reaction.Kind) *Leaf {
	if !kind.Valid() {
		panic(fmt.Sprintf("collection: NewLeaf with invalid kind %d", int(kind)))
	}
	return &Leaf{kind: kind}
}

// NewForcedLeaf creates a leaf collection containing exactly one reaction
// whose trigger classification is forced and whose payload is empty. Used
// when a caller needs to force an immediate, argument-less reaction of the
// given kind.
func NewForcedLeaf(kind reaction.Kind) *Leaf {
	l := NewLeaf(kind)
	if err := l.Add(reaction.NewForced(kind)); err != nil {
		// Leaf.Add never fails.
		panic(err)
	}
	return l
}

// Kind returns the fixed reaction kind this collection holds.
func (l *Leaf) Kind() reaction.Kind { return l.kind }

// Reactions returns the stored reactions in insertion order. The returned
// slice is the collection's internal storage; callers must treat it as
// read-only.
func (l *Leaf) Reactions() []*reaction.Reaction { return l.reactions }

// Len returns the number of stored reactions.
func (l *Leaf) Len() int { return len(l.reactions) }

// Add appends r, taking ownership. Never returns an error on a leaf.
// Panics if r is nil or if r's kind differs from the collection's kind;
// both indicate a structural bug in the caller.
func (l *Leaf) Add(r *reaction.Reaction) error {
	if r == nil {
		panic("collection: Add with nil reaction")
	}
	if r.Kind() != l.kind {
		panic(fmt.Sprintf("collection: Add %s reaction to %s collection", r.Kind(), l.kind))
	}
	l.reactions = append(l.reactions, r)
	return nil
}

// Clear removes all stored reactions, retaining capacity so a driver can
// reuse the same allocated tree every step.
func (l *Leaf) Clear() {
	// Nil out the slots so the backing array does not retain the reactions.
	for i := range l.reactions {
		l.reactions[i] = nil
	}
	l.reactions = l.reactions[:0]
}

// HasAny returns true iff the collection is nonempty.
func (l *Leaf) HasAny() bool { return len(l.reactions) > 0 }

// Concatenate appends a clone of every reaction in other, in other's order,
// leaving other unmodified. Clones rather than aliases: the two collections
// must remain independently owned and independently clearable afterward.
// Returns a SHAPE_MISMATCH error if other is not a leaf collection of the
// same kind. Panics if other is nil.
func (l *Leaf) Concatenate(other Collection) error {
	if other == nil {
		panic("collection: Concatenate with nil collection")
	}
	o, ok := other.(*Leaf)
	if !ok {
		return newShapeMismatchError("Leaf.Concatenate",
			"collections built from differently-shaped model trees",
			"leaf", variantName(other))
	}
	if o.kind != l.kind {
		return newShapeMismatchError("Leaf.Concatenate",
			"collections hold different reaction kinds",
			l.kind.String(), o.kind.String())
	}
	for _, r := range o.reactions {
		l.reactions = append(l.reactions, r.Clone())
	}
	return nil
}

// ReplaceWith clears this collection, then concatenates other's content
// into it.
func (l *Leaf) ReplaceWith(other Collection) error {
	l.Clear()
	return l.Concatenate(other)
}
