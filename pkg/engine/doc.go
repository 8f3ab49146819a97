// Package engine wires pkg/compare, pkg/resolve, and pkg/execute into the
// single end-to-end run spec.md §4 describes for one folder pair: lock
// both roots, compare, resolve directions (consulting the sync database
// for the Automatic policy), execute the resolved operations, then — for
// Automatic runs only — persist the post-run state back to the database
// before releasing the locks.
package engine
