package fs

import "os"

// Rename performs a rename, classifying a cross-device failure as
// CodeDifferentVolume so that move_file/move_dir can recover locally by
// falling back to copy-then-remove, per spec.md's propagation policy. On
// Windows, renamePlatform additionally retries through read-only-attribute
// interference and 8.3 short-name clashes before giving up.
func Rename(oldPath, newPath string) error {
	if err := renamePlatform(oldPath, newPath); err != nil {
		if isCrossDeviceError(err) {
			return wrap("rename", newPath, CodeDifferentVolume, err)
		}
		if os.IsNotExist(err) {
			return wrap("rename", oldPath, CodeNotFound, err)
		}
		if os.IsExist(err) {
			return wrap("rename", newPath, CodeAlreadyExists, err)
		}
		if os.IsPermission(err) {
			return wrap("rename", newPath, CodePermissionDenied, err)
		}
		return wrap("rename", newPath, CodeUnknown, err)
	}
	return nil
}
