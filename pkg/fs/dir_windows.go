package fs

import "github.com/foldersync/foldersync/pkg/pathutil"

// dirCreatePath applies the long-path prefix using the CreateDirectoryEx
// threshold (MAX_PATH-12, per spec.md §4.7), which reserves room for an
// 8.3 alias of the new directory.
func dirCreatePath(path string) string {
	return pathutil.EnsureLongPath(path, true)
}
