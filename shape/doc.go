// Package shape gives the simulated model tree's composition an explicit,
// loadable form. A shape describes the branching of a model tree (leaf or
// diagram with recursively-shaped children) without any behavior, and is
// the producer-side contract for reaction collection: Build allocates a
// collection.CompositeSet tree mirroring the shape, which is the only
// correct way to obtain a new set compatible with a given model tree.
//
// Shapes can be declared in YAML and are validated twice on load: against
// an embedded CUE schema, then structurally (a leaf declares no children).
package shape
