// Package inventory implements the point-of-sale inventory engine.
//
// The Store is the single source of truth: an ordered, in-memory sequence
// of Items with validated mutation operations. All other packages are
// stateless functions over the Store's contents (filtering, CSV encoding,
// snapshot persistence).
//
// Key design constraints:
//   - Single-threaded: the Store assumes one control thread and carries no
//     locking. Callers that introduce concurrency own the synchronization.
//   - All-or-nothing mutation: every operation validates before it touches
//     state. A ValidationError means nothing changed.
//   - Insertion order is preserved and is the only ordering guarantee.
//   - Time is injected via the Clock interface so tests control timestamps.
package inventory
