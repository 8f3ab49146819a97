//go:build !windows

package fs

import "os"

// createSymlink ignores directory on POSIX, where a symbolic link carries
// no file-vs-directory distinction at creation time.
func createSymlink(target, dst string, directory bool) error {
	return os.Symlink(target, dst)
}
