// Package tracelog records what a simulation driver collected at each
// step, for post-hoc inspection. It observes merged composite reaction
// sets; it never dispatches them.
//
// The log is SQLite-backed: one row per step, one row per reaction in
// dispatch order (kind by kind, then tree order within a kind). Rows store
// the reaction's kind, trigger classification, tree path and id; payloads
// are opaque to the log. Steps are numbered by a monotonic StepClock
// sequence supplied by the driver; wall-clock time is recorded only as an
// annotation, never used for ordering.
//
// Snapshot produces a deterministic, id-free description of one step's
// collected reactions, serialized as canonical JSON for golden-file
// comparison in tests.
package tracelog
