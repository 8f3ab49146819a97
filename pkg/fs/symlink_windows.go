package fs

import (
	"golang.org/x/sys/windows"

	"github.com/foldersync/foldersync/pkg/pathutil"
)

// createSymlink uses the raw CreateSymbolicLink flags rather than
// os.Symlink's auto-detection, since directory must reflect the original
// target's kind as recorded at scan time, not whatever (possibly absent)
// path currently exists at dst.
func createSymlink(target, dst string, directory bool) error {
	target16, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return err
	}
	dst16, err := windows.UTF16PtrFromString(pathutil.EnsureLongPath(dst, false))
	if err != nil {
		return err
	}
	flags := uint32(windows.SYMBOLIC_LINK_FLAG_ALLOW_UNPRIVILEGED_CREATE)
	if directory {
		flags |= windows.SYMBOLIC_LINK_FLAG_DIRECTORY
	}
	return windows.CreateSymbolicLink(dst16, target16, flags)
}
