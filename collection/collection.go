package collection

import (
	"fmt"

	"github.com/hdsim/reactree/reaction"
)

// Collection is a homogeneous container of simultaneous reactions of one
// fixed kind. Exactly two concrete variants exist: Leaf, which owns an
// ordered sequence of reactions, and Diagram, which owns no reactions and
// instead references the collections of its children.
type Collection interface {
	// Kind returns the fixed reaction kind this collection holds.
	Kind() reaction.Kind

	// Clear removes all reactions transitively reachable from this node.
	// Structure (child references, leaf capacity) is retained for reuse.
	Clear()

	// HasAny returns true iff any reaction is transitively reachable from
	// this node.
	HasAny() bool

	// Add stores one new reaction, taking ownership. Returns an
	// UNSUPPORTED_OPERATION error on a diagram-shaped collection: reactions
	// may only be added where they are produced, at leaves.
	// Panics if r is nil or of the wrong kind.
	Add(r *reaction.Reaction) error

	// Concatenate appends every reaction reachable from other to the
	// matching position in this collection, preserving other's internal
	// order and leaving other unmodified. Returns a SHAPE_MISMATCH error
	// if other is not the same concrete variant, kind, or (diagram case)
	// child count. Panics if other is nil.
	Concatenate(other Collection) error

	// ReplaceWith clears this collection, then concatenates other's
	// content into it.
	ReplaceWith(other Collection) error
}

// Walk visits every reaction reachable from c in dispatch order: insertion
// order within a leaf, child index order within a diagram, depth first.
// path holds the child indices from c down to the owning leaf; it is only
// valid for the duration of the callback and must be copied to retain.
// Walk stops early and returns false if fn returns false.
//
// Walk supports the two variants defined in this package and panics on any
// other Collection implementation, and on unattached diagram children.
func Walk(c Collection, fn func(path []int, r *reaction.Reaction) bool) bool {
	return walk(c, nil, fn)
}

func walk(c Collection, path []int, fn func(path []int, r *reaction.Reaction) bool) bool {
	switch col := c.(type) {
	case *Leaf:
		for _, r := range col.reactions {
			if !fn(path, r) {
				return false
			}
		}
		return true
	case *Diagram:
		for i := range col.children {
			child := col.children[i].col
			if child == nil {
				panic(fmt.Sprintf("collection: walk through unattached child %d", i))
			}
			if !walk(child, append(path, i), fn) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("collection: walk over unknown variant %T", c))
	}
}

// Len returns the number of reactions transitively reachable from c.
func Len(c Collection) int {
	n := 0
	Walk(c, func([]int, *reaction.Reaction) bool {
		n++
		return true
	})
	return n
}

// SameShape reports whether a and b have the same shape: the same concrete
// variant and, recursively, the same child counts. Kind is not part of
// shape; the three collections of one composite bundle share a shape while
// holding different kinds. Panics on unattached diagram children and on
// variants not defined in this package.
func SameShape(a, b Collection) bool {
	switch ca := a.(type) {
	case *Leaf:
		_, ok := b.(*Leaf)
		return ok
	case *Diagram:
		cb, ok := b.(*Diagram)
		if !ok || len(ca.children) != len(cb.children) {
			return false
		}
		for i := range ca.children {
			childA, childB := ca.children[i].col, cb.children[i].col
			if childA == nil || childB == nil {
				panic(fmt.Sprintf("collection: shape comparison through unattached child %d", i))
			}
			if !SameShape(childA, childB) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("collection: shape comparison over unknown variant %T", a))
	}
}

// variantName names a collection's concrete variant for error messages.
func variantName(c Collection) string {
	switch col := c.(type) {
	case *Leaf:
		return "leaf"
	case *Diagram:
		return fmt.Sprintf("diagram[%d]", len(col.children))
	default:
		return fmt.Sprintf("%T", c)
	}
}
