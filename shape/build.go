package shape

import (
	"fmt"

	"github.com/hdsim/reactree/collection"
)

// Build allocates an empty composite reaction set tree mirroring n:
// a LeafSet for a leaf node, a DiagramSet over recursively-built children
// for a diagram node. Build validates n first, so a malformed shape is an
// error rather than a panic from the collection constructors.
func Build(n *Node) (collection.CompositeSet, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return build(n), nil
}

func build(n *Node) collection.CompositeSet {
	if n.Variant == VariantLeaf {
		return collection.NewLeafSet()
	}
	children := make([]collection.CompositeSet, len(n.Children))
	for i, child := range n.Children {
		children[i] = build(child)
	}
	return collection.NewDiagramSet(children...)
}

// Of recovers the shape of an existing composite set, for diagnostics and
// compatibility messages. Panics on a CompositeSet implementation other
// than the two collection variants.
func Of(s collection.CompositeSet) *Node {
	switch set := s.(type) {
	case *collection.LeafSet:
		return &Node{Variant: VariantLeaf}
	case *collection.DiagramSet:
		n := &Node{Variant: VariantDiagram, Children: make([]*Node, set.ChildCount())}
		for i := 0; i < set.ChildCount(); i++ {
			n.Children[i] = Of(set.Child(i))
		}
		return n
	default:
		panic(fmt.Sprintf("shape: unknown composite set variant %T", s))
	}
}

// Compatible reports whether two sets were built from the same tree shape
// and can therefore be merged.
func Compatible(a, b collection.CompositeSet) bool {
	return Equal(Of(a), Of(b))
}
