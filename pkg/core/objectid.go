package core

import "sync/atomic"

// ObjectID identifies a HierarchyObject uniquely within a single comparison
// run. It has no meaning across runs and is never persisted; the sync
// database keys its records by relative path instead (see pkg/syncdb).
type ObjectID uint64

// objectIDCounter is the monotonic source for ObjectID values. A single
// counter shared across every tree built in a process is simpler than
// scoping one per tree and costs nothing, since IDs are never compared
// across trees.
var objectIDCounter uint64

// nextObjectID returns a fresh, process-wide unique ObjectID.
func nextObjectID() ObjectID {
	return ObjectID(atomic.AddUint64(&objectIDCounter, 1))
}
