package execute

import (
	"github.com/foldersync/foldersync/pkg/core"
	"github.com/foldersync/foldersync/pkg/resolve"
)

// operationFor derives the SyncOperation the resolver already decided for
// object, by re-applying the same pure mapping pkg/resolve exposes to the
// CompareResult/SyncDirection/Active values the resolver already wrote
// onto the node. Keeping the mapping itself in one place (pkg/resolve)
// means the executor and any tests agree on it without duplicating the
// switch.
func operationFor(object core.HierarchyObject) core.SyncOperation {
	return resolve.Operation(object.CompareResult(), object.SyncDirection(), object.Active())
}
