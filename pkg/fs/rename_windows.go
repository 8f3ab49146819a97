package fs

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/foldersync/foldersync/pkg/pathutil"
)

// isCrossDeviceError detects ERROR_NOT_SAME_DEVICE, the Windows analogue
// of POSIX's EXDEV.
func isCrossDeviceError(err error) bool {
	linkErr, ok := err.(*os.LinkError)
	if !ok {
		return false
	}
	return linkErr.Err == windows.ERROR_NOT_SAME_DEVICE
}

// renamePlatform implements spec.md §4.7's secondary retry path: a plain
// rename first, then a read-only-attribute clear if the target resists
// being replaced, then an 8.3 short-name clash workaround, in that order.
// The original error from the first attempt is what's ultimately returned
// if every retry still fails, since it's the most informative one.
func renamePlatform(oldPath, newPath string) error {
	firstErr := os.Rename(oldPath, newPath)
	if firstErr == nil {
		return nil
	}
	if isCrossDeviceError(firstErr) {
		return firstErr
	}

	if info, statErr := os.Lstat(newPath); statErr == nil && info.Mode().Perm()&0200 == 0 {
		if os.Chmod(newPath, info.Mode().Perm()|0200) == nil {
			if os.Rename(oldPath, newPath) == nil {
				return nil
			}
		}
	}

	if clashErr := pathutil.WithShortNameClashAvoided(newPath, func() error {
		return os.Rename(oldPath, newPath)
	}); clashErr == nil {
		return nil
	}

	return firstErr
}
