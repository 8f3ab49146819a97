package syncdb

import "github.com/foldersync/foldersync/pkg/core"

// BuildFromHierarchy walks a fully reconciled mapping (every node's
// SynchronizeSides has already been applied by the executor, so a
// synchronized node's two sides agree) and records one Entry per node
// still present on at least one side, keyed by its relative path. A node
// absent on both sides (a mutual deletion) is simply omitted, so next
// run's Automatic resolution correctly treats it as never-seen rather
// than resurrecting a stale record for a path nothing references anymore.
func BuildFromHierarchy(mapping *core.BaseDirMapping) *Database {
	db := New()
	mapping.Walk(func(object core.HierarchyObject, relativePath string) {
		if !object.LeftPresent() && !object.RightPresent() {
			return
		}
		switch node := object.(type) {
		case *core.FileMapping:
			desc := node.LeftDescriptor
			if !node.LeftPresent() {
				desc = node.RightDescriptor
			}
			db.Record(Entry{
				Path:    relativePath,
				Kind:    entryKindFile,
				Size:    desc.Size,
				ModTime: desc.ModificationTime,
				FileID:  desc.FileID,
			})
		case *core.SymlinkMapping:
			desc := node.LeftDescriptor
			if !node.LeftPresent() {
				desc = node.RightDescriptor
			}
			db.Record(Entry{
				Path:    relativePath,
				Kind:    entryKindSymlink,
				ModTime: desc.ModificationTime,
			})
		case *core.DirMapping:
			modTime := node.LeftModTime
			if !node.LeftPresent() {
				modTime = node.RightModTime
			}
			db.Record(Entry{
				Path:    relativePath,
				Kind:    entryKindDirectory,
				ModTime: modTime,
			})
		}
	})
	return db
}
