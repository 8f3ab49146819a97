// Package core implements the in-memory data model shared by the
// synchronization engine: the paired hierarchy of left/right filesystem
// entries (HierarchyObject and its concrete forms), the raw per-side
// traversal mirror (DirContainer), and the enumerations and configuration
// types that the comparer, resolver, and executor packages operate on.
//
// The engine is single-threaded during tree mutation (the comparer builds
// the tree, then the executor mutates it; the two never run concurrently),
// so nodes are safe to mutate in place without internal locking. Ownership
// is by-pointer from parent to child, but no child stores a pointer back to
// its parent or to the root: relative paths are threaded through traversal
// calls instead of cached on each node, which sidesteps the cyclic
// parent/child reference problem entirely rather than working around it
// with an arena or parent id.
package core
