// Package collection implements the reaction-collection core of the
// simulation engine's event-dispatch machinery: homogeneous containers of
// simultaneous reactions of one kind, and the three-kind composite bundle,
// both mirroring the simulated model tree.
//
// ARCHITECTURE:
//
// Two structural variants exist for both layers, matching the model tree:
//
//   - Leaf / LeafSet: owned storage. Reactions are only ever added here,
//     because leaves are where reactions are produced.
//   - Diagram / DiagramSet: views. A diagram node owns no reactions; it
//     holds per-child references into its children's storage, so the
//     composite bundle at any tree level aliases the exact leaf storage
//     below it. Nothing is duplicated.
//
// A DiagramSet internally wires three Diagram collections (one per kind)
// over the matching-kind collections of its children, producing three trees
// with identical branching that each hold a different reaction kind.
//
// ORDERING:
//
// Insertion order within a leaf and index order of children within a
// diagram are preserved through every merge. That combined order is the
// order a downstream dispatcher must process reactions in; Walk delivers it.
//
// ERRORS:
//
// Expected, testable misuse (adding at a diagram node, concatenating
// differently-shaped trees, narrowing a non-leaf bundle) surfaces as *Error
// values with a Code, checked via the IsX predicates. Programming errors
// (nil arguments, out-of-range child indices, nil sub-collections at
// construction) panic: the structure is invalid and continuing would
// corrupt the event/kind pairing across the tree.
//
// CONCURRENCY:
//
// None. Every operation is synchronous and completes before returning.
// A tree assumes exclusive access by one driver goroutine; the typical
// reuse pattern is Clear at the start of a step, repopulate from several
// sources via Add/Concatenate, dispatch, then reuse the allocated tree
// next step. Clear releases leaf contents only, never tree structure.
package collection
