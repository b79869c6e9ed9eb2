// Package reaction defines the Reaction value stored by the collection
// package: one scheduled or triggered response of a fixed kind, carrying a
// trigger classification and an opaque payload.
//
// Reactions are immutable once constructed. The simulation driver never
// inspects payloads; it only routes reactions, by kind, to the matching
// handler on the model tree. Three kinds exist, in order of increasing
// ability to change simulated state:
//
//   - KindObservation: read-only reactions (logging, monitoring, output).
//   - KindDiscreteUpdate: reactions that may update discrete-valued state.
//   - KindUnrestrictedUpdate: reactions that may update any part of the state.
//
// Every reaction carries a UUIDv7 id assigned at construction. Clone
// preserves the id: a clone is an independent copy of the same logical
// reaction, and the shared id is what lets a trace reader correlate the
// copies a merge produced back to their origin.
package reaction
