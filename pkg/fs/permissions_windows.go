package fs

import (
	"os"

	winio "github.com/Microsoft/go-winio"
	"github.com/hectane/go-acl"
	"golang.org/x/sys/windows"
)

// copyPermissions reproduces src's mode bits on dst via go-acl's Chmod,
// which synthesizes an equivalent discretionary ACL since Windows has no
// direct analogue of POSIX permission bits. The Chmod runs under the
// backup and restore privileges so it can read and rewrite a file's ACL
// even when the running account isn't the file's owner and holds no
// explicit WRITE_DAC right on it — the same privilege pair Windows backup
// tools use to read and restore files regardless of whose they are.
func copyPermissions(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return winio.RunWithPrivileges([]string{winio.SeBackupPrivilege, winio.SeRestorePrivilege}, func() error {
		return acl.Chmod(dst, info.Mode())
	})
}

// isLockedError reports whether err corresponds to
// ERROR_SHARING_VIOLATION or ERROR_LOCK_VIOLATION, the conditions
// spec.md's "copy-locked-files" option exists to work around.
func isLockedError(err error) bool {
	pathErr, ok := err.(*os.PathError)
	if !ok {
		return false
	}
	return pathErr.Err == windows.ERROR_SHARING_VIOLATION || pathErr.Err == windows.ERROR_LOCK_VIOLATION
}
