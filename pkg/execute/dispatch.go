package execute

import (
	"time"

	"github.com/foldersync/foldersync/pkg/core"
	"github.com/foldersync/foldersync/pkg/fs"
)

// applyItem carries out op against the node at relativePath, where
// leftPath and rightPath are the two sides' absolute paths. It implements
// spec.md §4.6's per-item procedure table; the retry loop around each
// primitive call lives in runWithRetry (execute.go), not here, so this function
// always makes exactly one attempt.
func applyItem(object core.HierarchyObject, leftPath, rightPath, relativePath string, op core.SyncOperation, config core.Configuration, recycler Recycler, now time.Time) error {
	switch op {
	case core.SyncOperationDoNothing, core.SyncOperationEqual, core.SyncOperationUnresolvedConflict:
		return nil
	case core.SyncOperationCreateRight:
		return create(object, leftPath, rightPath, true, config)
	case core.SyncOperationCreateLeft:
		return create(object, rightPath, leftPath, false, config)
	case core.SyncOperationOverwriteRight:
		return overwrite(object, leftPath, rightPath, relativePath, true, config, recycler, now)
	case core.SyncOperationOverwriteLeft:
		return overwrite(object, rightPath, leftPath, relativePath, false, config, recycler, now)
	case core.SyncOperationDeleteRight:
		return disposeOf(rightPath, relativePath, isDirNode(object), config.DeletionPolicy, recycler, now)
	case core.SyncOperationDeleteLeft:
		return disposeOf(leftPath, relativePath, isDirNode(object), config.DeletionPolicy, recycler, now)
	case core.SyncOperationCopyMetadataToRight:
		return copyMetadata(leftPath, rightPath, config)
	case core.SyncOperationCopyMetadataToLeft:
		return copyMetadata(rightPath, leftPath, config)
	default:
		return nil
	}
}

// create populates dst so that it matches src, for an item that doesn't
// yet exist on dst's side: create_dir for a directory (copying src's
// permissions when configured), copy_file for a regular file, copy_symlink
// for a symbolic link. sourceIsLeft tells a FileMapping/SymlinkMapping
// which of its two descriptors describes src.
func create(object core.HierarchyObject, src, dst string, sourceIsLeft bool, config core.Configuration) error {
	switch node := object.(type) {
	case *core.DirMapping:
		if err := fs.CreateDir(dst); err != nil {
			return err
		}
		if config.CopyPermissions {
			return fs.CopyPermissions(src, dst)
		}
		return nil
	case *core.FileMapping:
		return fs.CopyFile(src, dst, copyOptionsFor(config))
	case *core.SymlinkMapping:
		descriptor := node.LeftDescriptor
		if !sourceIsLeft {
			descriptor = node.RightDescriptor
		}
		return fs.CopySymlink(descriptor.Target, dst, descriptor.Kind == core.SymbolicLinkKindDirectory)
	default:
		return nil
	}
}

// overwrite replaces whatever exists at dst with src's content, applying
// the deletion policy to the item being replaced first: for a file, via
// fs.CopyOptions.OnDeleteTarget (invoked immediately before CopyFile
// replaces dst); for a symlink, via a direct disposeOf call, since
// CopySymlink has no equivalent pre-delete hook and recreating a link is
// cheap enough not to need one.
func overwrite(object core.HierarchyObject, src, dst, relativePath string, sourceIsLeft bool, config core.Configuration, recycler Recycler, now time.Time) error {
	switch node := object.(type) {
	case *core.FileMapping:
		options := copyOptionsFor(config)
		// An overwrite always stages the replacement under a temporary
		// name regardless of config.TransactionalCopy: OnDeleteTarget
		// only has a dst left to dispose of if the write itself didn't
		// first collide with it, which a direct (non-staged) write would
		// do immediately via CopyFile's O_EXCL create.
		options.Transactional = true
		options.OnDeleteTarget = func(target string) {
			_ = disposeOf(target, relativePath, false, config.DeletionPolicy, recycler, now)
		}
		return fs.CopyFile(src, dst, options)
	case *core.SymlinkMapping:
		if err := disposeOf(dst, relativePath, false, config.DeletionPolicy, recycler, now); err != nil {
			return err
		}
		descriptor := node.LeftDescriptor
		if !sourceIsLeft {
			descriptor = node.RightDescriptor
		}
		return fs.CopySymlink(descriptor.Target, dst, descriptor.Kind == core.SymbolicLinkKindDirectory)
	default:
		return nil
	}
}

// copyMetadata applies src's modification time (and permissions, if
// configured) to dst without touching dst's content, per
// CopyMetadataToRight/Left.
func copyMetadata(src, dst string, config core.Configuration) error {
	attrs, err := fs.ReadAttributes(src)
	if err != nil {
		return err
	}
	if err := fs.SetModificationTime(dst, attrs.ModTime); err != nil {
		return err
	}
	if config.CopyPermissions {
		return fs.CopyPermissions(src, dst)
	}
	return nil
}

func copyOptionsFor(config core.Configuration) fs.CopyOptions {
	return fs.CopyOptions{
		Permissions:       config.CopyPermissions,
		Transactional:     config.TransactionalCopy,
		AllowLockedSource: config.CopyLockedFiles,
	}
}

func isDirNode(object core.HierarchyObject) bool {
	_, ok := object.(*core.DirMapping)
	return ok
}
