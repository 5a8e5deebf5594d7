// Package snapshot persists the inventory working copy between CLI
// invocations.
//
// The engine holds the inventory in memory; a process-per-operation
// CLI needs a durable equivalent of that open document. Snapshot stores
// the whole inventory in a local SQLite file: Save replaces the entire
// contents inside one transaction, Load reads it back in store order.
// Durability is "last full save wins" - there is no finer-grained
// history.
//
// CSV remains the interchange format (import/export); the snapshot file
// is internal working state.
package snapshot
