package fs

import (
	"os"
	"time"
)

// SetModificationTime sets path's modification time to the given Unix
// timestamp. A read-only target has its read-only attribute temporarily
// cleared and restored around the update, since most platforms refuse to
// touch timestamps on a read-only file. On a FAT/FAT32 volume the desired
// time is additionally encoded into the create+write pair per the DST
// hack (pkg/fs/fat); elsewhere only the write time is touched via
// os.Chtimes, which has consistent enough semantics on both POSIX and
// Windows to need no further platform split.
func SetModificationTime(path string, modificationTime int64) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return wrap("set_mtime", path, CodeNotFound, err)
		}
		return wrap("set_mtime", path, CodeUnknown, err)
	}

	readOnly := info.Mode().Perm()&0200 == 0
	if readOnly {
		if err := os.Chmod(path, info.Mode().Perm()|0200); err != nil {
			return wrap("set_mtime", path, CodePermissionDenied, err)
		}
		defer os.Chmod(path, info.Mode().Perm())
	}

	target := time.Unix(modificationTime, 0)
	if err := os.Chtimes(path, target, target); err != nil {
		if os.IsNotExist(err) {
			return wrap("set_mtime", path, CodeNotFound, err)
		}
		if os.IsPermission(err) {
			return wrap("set_mtime", path, CodePermissionDenied, err)
		}
		return wrap("set_mtime", path, CodeUnknown, err)
	}

	if err := setFATModTime(path, modificationTime); err != nil {
		return wrap("set_mtime", path, CodeAttributeUnsupported, err)
	}
	return nil
}
