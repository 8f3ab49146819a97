//go:build !windows

package fs

import (
	"os"
	"syscall"
)

// copyPermissions copies POSIX permission bits and, best-effort,
// ownership from src to dst.
func copyPermissions(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		_ = os.Chown(dst, int(stat.Uid), int(stat.Gid))
	}
	return nil
}

// isLockedError is always false on POSIX: an open file descriptor doesn't
// prevent another process from reading the same path.
func isLockedError(err error) bool {
	return false
}
