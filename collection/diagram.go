package collection

import (
	"fmt"

	"github.com/hdsim/reactree/reaction"
)

// childSlot is one child reference inside a Diagram. The owned flag records
// whether the diagram owns the referenced collection's lifetime or merely
// aliases storage owned elsewhere; aliasing is structurally visible rather
// than a pointer convention.
type childSlot struct {
	col   Collection
	owned bool
}

// Diagram is the concrete collection variant for a composite model. It owns
// no reactions; it holds a fixed-size array of references to per-child
// collections, mirroring the model tree's branching at this node. Every
// traversal visits children in index order.
type Diagram struct {
	kind     reaction.Kind
	children []childSlot
}

// Compile-time interface check.
var _ Collection = (*Diagram)(nil)

// NewDiagram creates a diagram collection for the given kind with
// numChildren unattached child slots. Children must be attached via
// AttachOwned or AttachExternal before Clear, HasAny, Concatenate or Walk
// touch them. Panics if kind is invalid or numChildren is negative.
func NewDiagram(kind reaction.Kind, numChildren int) *Diagram {
	if !kind.Valid() {
		panic(fmt.Sprintf("collection: NewDiagram with invalid kind %d", int(kind)))
	}
	if numChildren < 0 {
		panic(fmt.Sprintf("collection: NewDiagram with negative child count %d", numChildren))
	}
	return &Diagram{kind: kind, children: make([]childSlot, numChildren)}
}

// Kind returns the fixed reaction kind this collection holds.
func (d *Diagram) Kind() reaction.Kind { return d.kind }

// ChildCount returns the number of child slots, attached or not.
func (d *Diagram) ChildCount() int { return len(d.children) }

// Child returns the collection attached at index, or nil if the slot is
// unattached. Panics if index is out of range.
func (d *Diagram) Child(index int) Collection {
	d.checkIndex("Child", index)
	return d.children[index].col
}

// OwnsChild reports whether the collection at index was attached with
// ownership (AttachOwned) rather than as an external reference. Returns
// false for unattached slots. Panics if index is out of range.
func (d *Diagram) OwnsChild(index int) bool {
	d.checkIndex("OwnsChild", index)
	return d.children[index].owned
}

// AttachOwned attaches c at index, transferring ownership of c to this
// diagram. Panics if c is nil, index is out of range, or c holds a
// different kind.
func (d *Diagram) AttachOwned(index int, c Collection) {
	d.attach("AttachOwned", index, c, true)
}

// AttachExternal attaches c at index without taking ownership; the caller
// guarantees c outlives this diagram. Panics if c is nil, index is out of
// range, or c holds a different kind.
func (d *Diagram) AttachExternal(index int, c Collection) {
	d.attach("AttachExternal", index, c, false)
}

func (d *Diagram) attach(op string, index int, c Collection, owned bool) {
	if c == nil {
		panic(fmt.Sprintf("collection: %s with nil collection", op))
	}
	d.checkIndex(op, index)
	if c.Kind() != d.kind {
		panic(fmt.Sprintf("collection: %s of %s collection into %s diagram", op, c.Kind(), d.kind))
	}
	d.children[index] = childSlot{col: c, owned: owned}
}

// Add always fails: reactions may only be added where they are produced,
// at leaves. Panics if r is nil, matching the leaf precondition.
func (d *Diagram) Add(r *reaction.Reaction) error {
	if r == nil {
		panic("collection: Add with nil reaction")
	}
	return newUnsupportedError("Diagram.Add",
		"reactions cannot be added at a diagram node; add at the producing leaf")
}

// Clear clears every attached child in index order.
// Panics on an unattached child.
func (d *Diagram) Clear() {
	for i := range d.children {
		d.child("Clear", i).Clear()
	}
}

// HasAny returns true iff any child has any reaction, short-circuiting on
// the first child with content. Panics on an unattached child.
func (d *Diagram) HasAny() bool {
	for i := range d.children {
		if d.child("HasAny", i).HasAny() {
			return true
		}
	}
	return false
}

// Concatenate recursively concatenates child i of other into child i of
// this diagram, for every index in order. Returns a SHAPE_MISMATCH error
// if other is not a diagram of the same kind and child count: the two
// collections were built from differently-shaped model trees, a caller bug
// that must surface immediately rather than silently corrupt data.
// Panics if other is nil.
func (d *Diagram) Concatenate(other Collection) error {
	if other == nil {
		panic("collection: Concatenate with nil collection")
	}
	o, ok := other.(*Diagram)
	if !ok {
		return newShapeMismatchError("Diagram.Concatenate",
			"collections built from differently-shaped model trees",
			variantName(d), variantName(other))
	}
	if o.kind != d.kind {
		return newShapeMismatchError("Diagram.Concatenate",
			"collections hold different reaction kinds",
			d.kind.String(), o.kind.String())
	}
	if len(o.children) != len(d.children) {
		return newShapeMismatchError("Diagram.Concatenate",
			"diagrams have different child counts",
			variantName(d), variantName(o))
	}
	for i := range d.children {
		if err := d.child("Concatenate", i).Concatenate(o.child("Concatenate", i)); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceWith clears this diagram's subtree, then concatenates other's
// content into it.
func (d *Diagram) ReplaceWith(other Collection) error {
	d.Clear()
	return d.Concatenate(other)
}

func (d *Diagram) checkIndex(op string, index int) {
	if index < 0 || index >= len(d.children) {
		panic(fmt.Sprintf("collection: %s index %d out of range [0,%d)", op, index, len(d.children)))
	}
}

func (d *Diagram) child(op string, index int) Collection {
	c := d.children[index].col
	if c == nil {
		panic(fmt.Sprintf("collection: %s through unattached child %d", op, index))
	}
	return c
}
