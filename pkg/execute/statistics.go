package execute

import "github.com/foldersync/foldersync/pkg/core"

// computeStatistics walks mapping once, classifying every node's
// SyncOperation (already assigned by the resolver, via node.SyncDirection
// and node.Active) and accumulating the pre-pass totals spec.md §4.6
// requires before any item is touched.
func computeStatistics(mapping *core.BaseDirMapping) Statistics {
	var stats Statistics

	mapping.Walk(func(object core.HierarchyObject, relativePath string) {
		switch operationFor(object) {
		case core.SyncOperationCreateLeft, core.SyncOperationOverwriteLeft, core.SyncOperationDeleteLeft, core.SyncOperationCopyMetadataToLeft:
			stats.ItemsToLeft++
			stats.BytesToLeft += bytesFor(object)
		case core.SyncOperationCreateRight, core.SyncOperationOverwriteRight, core.SyncOperationDeleteRight, core.SyncOperationCopyMetadataToRight:
			stats.ItemsToRight++
			stats.BytesToRight += bytesFor(object)
		case core.SyncOperationUnresolvedConflict:
			stats.Conflicts++
		}
	})

	return stats
}

// bytesFor reports the byte count an operation on object will move: a
// file's size when creating or overwriting it, zero for every other node
// kind and operation (directories and symlinks carry no transfer bytes,
// and deletions/metadata-only changes don't copy content).
func bytesFor(object core.HierarchyObject) uint64 {
	file, ok := object.(*core.FileMapping)
	if !ok {
		return 0
	}
	op := operationFor(object)
	switch op {
	case core.SyncOperationCreateRight, core.SyncOperationOverwriteRight:
		return file.LeftDescriptor.Size
	case core.SyncOperationCreateLeft, core.SyncOperationOverwriteLeft:
		return file.RightDescriptor.Size
	default:
		return 0
	}
}
