package fs

import "os"

// defaultDirPermissions matches the teacher's own default of 0700 for
// directories it creates under its data directory (see the Mutagen
// function in paths.go); synchronized directories use the more
// permissive 0755 since they mirror user-visible content rather than
// private application state.
const defaultDirPermissions = 0755

// CreateDir creates a single directory level (non-recursive: the caller
// creates parents top-down during traversal-ordered execution, never out
// of order) at path.
func CreateDir(path string) error {
	if err := os.Mkdir(dirCreatePath(path), defaultDirPermissions); err != nil {
		if os.IsExist(err) {
			return wrap("create_dir", path, CodeAlreadyExists, err)
		}
		if os.IsPermission(err) {
			return wrap("create_dir", path, CodePermissionDenied, err)
		}
		if os.IsNotExist(err) {
			return wrap("create_dir", path, CodeNotFound, err)
		}
		return wrap("create_dir", path, CodeUnknown, err)
	}
	return nil
}
