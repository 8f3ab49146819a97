package execute

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/foldersync/foldersync/pkg/core"
	"github.com/foldersync/foldersync/pkg/fs"
)

// versioningTimestampLayout matches original_source/structures.h's
// TimeStamp naming style: "<name> yyyy-mm-dd hhmmss".
const versioningTimestampLayout = "2006-01-02 150405"

// disposeOf removes or relocates whatever currently exists at path
// according to policy, implementing the three DeletionPolicyKind values
// spec.md §4.6 names. relativePath and isDir identify the item for
// building a versioned destination; now is threaded in rather than
// captured from time.Now() so that tests can supply a fixed instant.
func disposeOf(path, relativePath string, isDir bool, policy core.DeletionPolicy, recycler Recycler, now time.Time) error {
	switch policy.Kind {
	case core.DeletionPolicyPermanent:
		if isDir {
			return fs.RemoveDir(path, nil)
		}
		return fs.RemoveFile(path)
	case core.DeletionPolicyRecycle:
		if recycler == nil {
			return fmt.Errorf("deletion policy is Recycle but no recycler was configured")
		}
		return recycler.Recycle(path)
	case core.DeletionPolicyVersioning:
		return moveToVersioning(path, relativePath, isDir, policy, now)
	default:
		return fmt.Errorf("unrecognized deletion policy %d", policy.Kind)
	}
}

// moveToVersioning relocates path into policy.Path, naming the destination
// per policy.NamingStyle, creating the versioning directory (and any
// intermediate relative subdirectories) lazily on first use.
func moveToVersioning(path, relativePath string, isDir bool, policy core.DeletionPolicy, now time.Time) error {
	destination := versionedPath(policy.Path, relativePath, policy.NamingStyle, now)

	if err := ensureDirAll(filepath.Dir(destination)); err != nil {
		return err
	}

	if policy.NamingStyle == core.VersioningNamingStyleReplace && fs.Exists(destination) {
		if isDir {
			if err := fs.RemoveDir(destination, nil); err != nil {
				return err
			}
		} else if err := fs.RemoveFile(destination); err != nil {
			return err
		}
	}

	if isDir {
		return fs.MoveDir(path, destination)
	}
	return fs.MoveFile(path, destination)
}

// versionedPath builds the destination path for a versioned item: the
// Replace style keeps a single persistent name matching relativePath
// unchanged, while TimeStamp appends " yyyy-mm-dd hhmmss" to the file
// name so successive versions accumulate instead of overwriting one
// another.
func versionedPath(versioningDir, relativePath string, style core.VersioningNamingStyle, now time.Time) string {
	if style == core.VersioningNamingStyleReplace {
		return filepath.Join(versioningDir, filepath.FromSlash(relativePath))
	}
	stamped := relativePath + " " + now.Format(versioningTimestampLayout)
	return filepath.Join(versioningDir, filepath.FromSlash(stamped))
}

// ensureDirAll creates dir and any missing ancestors. Unlike fs.CreateDir
// (deliberately non-recursive, since every directory the main passes
// create already has its parent created first by construction), the
// versioning tree branches off to a side path the traversal order never
// visits, so it needs its own recursive creation.
func ensureDirAll(dir string) error {
	return os.MkdirAll(dir, 0755)
}
