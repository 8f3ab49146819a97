//go:build !windows

package fs

import (
	"os"
	"syscall"
)

// isCrossDeviceError is grounded verbatim on the teacher's
// atomic_posix.go helper of the same name.
func isCrossDeviceError(err error) bool {
	linkErr, ok := err.(*os.LinkError)
	if !ok {
		return false
	}
	return linkErr.Err == syscall.EXDEV
}

// renamePlatform is a plain os.Rename on POSIX; the read-only-attribute and
// 8.3 short-name retry path is a Windows-only concern.
func renamePlatform(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}
