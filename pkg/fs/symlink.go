package fs

import "os"

// GetSymlinkTargetText reads the raw, unresolved target text of the
// symbolic link at path. Errors are tolerated by the caller (the
// comparer records an empty Target rather than aborting the scan) so
// this function's error is informational only.
func GetSymlinkTargetText(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", wrap("get_symlink_target_text", path, CodeUnknown, err)
	}
	return target, nil
}

// CopySymlink recreates a symbolic link at dst pointing at target, using
// directory to choose between a file-type and directory-type link on
// platforms (Windows) where that distinction matters at creation time.
func CopySymlink(target, dst string, directory bool) error {
	if err := createSymlink(target, dst, directory); err != nil {
		if os.IsExist(err) {
			return wrap("copy_symlink", dst, CodeAlreadyExists, err)
		}
		if os.IsPermission(err) {
			return wrap("copy_symlink", dst, CodePermissionDenied, err)
		}
		return wrap("copy_symlink", dst, CodeUnknown, err)
	}
	return nil
}
