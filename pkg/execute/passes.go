package execute

import "github.com/foldersync/foldersync/pkg/core"

// item is one node paired with the absolute path it occupies on each
// side and its slash-separated relative path, collected up front so each
// pass can be sorted by path length without re-walking the tree.
type item struct {
	object       core.HierarchyObject
	leftPath     string
	rightPath    string
	relativePath string
	op           core.SyncOperation
}

// collectItems walks mapping once, pairing every node with its absolute
// paths and resolved operation.
func collectItems(mapping *core.BaseDirMapping) []item {
	var items []item
	mapping.Walk(func(object core.HierarchyObject, relativePath string) {
		items = append(items, item{
			object:       object,
			leftPath:     mapping.LeftBasePath + relativePath,
			rightPath:    mapping.RightBasePath + relativePath,
			relativePath: relativePath,
			op:           operationFor(object),
		})
	})
	return items
}

// directoryCreationPass selects CreateLeft/CreateRight directory items,
// ordered deep-first by ascending target-path length (spec.md §4.6 pass
// 1) so a parent is always created before any child that needs it.
func directoryCreationPass(items []item) []item {
	var pass []item
	for _, it := range items {
		if _, ok := it.object.(*core.DirMapping); !ok {
			continue
		}
		if it.op != core.SyncOperationCreateLeft && it.op != core.SyncOperationCreateRight {
			continue
		}
		pass = append(pass, it)
	}
	sortByTargetPathLengthAscending(pass)
	return pass
}

// contentPass selects every file/symlink create, overwrite, and metadata
// operation, plus directory metadata operations and overwrites of a kind
// that never needs an ordering relationship with other items (spec.md §4.6
// pass 2).
func contentPass(items []item) []item {
	var pass []item
	for _, it := range items {
		switch it.object.(type) {
		case *core.DirMapping:
			if it.op == core.SyncOperationCopyMetadataToLeft || it.op == core.SyncOperationCopyMetadataToRight {
				pass = append(pass, it)
			}
		default:
			switch it.op {
			case core.SyncOperationCreateLeft, core.SyncOperationCreateRight,
				core.SyncOperationOverwriteLeft, core.SyncOperationOverwriteRight,
				core.SyncOperationCopyMetadataToLeft, core.SyncOperationCopyMetadataToRight:
				pass = append(pass, it)
			}
		}
	}
	return pass
}

// conflictPass selects every UnresolvedConflict item. These touch no
// filesystem primitive (runWithRetry reports them to the ErrorSink as a
// warning and returns immediately, per spec.md §4.6), so they carry no
// ordering relationship with the other passes; they run first so a
// conflict is surfaced before any real work for that pair proceeds.
func conflictPass(items []item) []item {
	var pass []item
	for _, it := range items {
		if it.op == core.SyncOperationUnresolvedConflict {
			pass = append(pass, it)
		}
	}
	return pass
}

// deletionPass selects every DeleteLeft/DeleteRight item (of any node
// kind), ordered deep-first by descending source-path length (spec.md
// §4.6 pass 3) so a child disappears before its parent.
func deletionPass(items []item) []item {
	var pass []item
	for _, it := range items {
		if it.op == core.SyncOperationDeleteLeft || it.op == core.SyncOperationDeleteRight {
			pass = append(pass, it)
		}
	}
	sortBySourcePathLengthDescending(pass)
	return pass
}

// targetPathFor returns the path the operation is creating or updating —
// the side named by TargetSide.
func targetPathFor(it item) string {
	if it.op.TargetSide() == core.SyncDirectionLeft {
		return it.leftPath
	}
	return it.rightPath
}

func sortByTargetPathLengthAscending(items []item) {
	insertionSortBy(items, func(a, b item) bool {
		return len(targetPathFor(a)) < len(targetPathFor(b))
	})
}

// sortBySourcePathLengthDescending orders a deletion pass deep-first: the
// path being removed is the same TargetSide path a create or overwrite
// would act on, so the "source" spec.md §4.6 refers to is just that side's
// path, sorted longest (deepest) first.
func sortBySourcePathLengthDescending(items []item) {
	insertionSortBy(items, func(a, b item) bool {
		return len(targetPathFor(a)) > len(targetPathFor(b))
	})
}

// insertionSortBy is a small stable sort used for the two pass orderings
// above; the lists involved are bounded by tree size per run, not by any
// hot loop, so a simple O(n^2) insertion sort keeps the ordering logic
// easy to verify against spec.md's "deep-first by path length" wording
// without reaching for sort.Slice's less-obvious stability guarantees.
func insertionSortBy(items []item, less func(a, b item) bool) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && less(items[j], items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}
