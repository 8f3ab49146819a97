package fs

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/foldersync/foldersync/pkg/pathutil"
)

// stableFileID opens path with backup semantics (following the teacher's
// own open_windows.go CreateFile flags) purely to query its NTFS file
// index, which plays the same role as a POSIX inode number.
func stableFileID(path string, _ os.FileInfo) (*uint64, error) {
	path16, err := windows.UTF16PtrFromString(pathutil.EnsureLongPath(path, false))
	if err != nil {
		return nil, errFileIDUnsupported
	}
	handle, err := windows.CreateFile(
		path16,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS|windows.FILE_FLAG_OPEN_REPARSE_POINT,
		0,
	)
	if err != nil {
		return nil, errFileIDUnsupported
	}
	defer windows.CloseHandle(handle)

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(handle, &info); err != nil {
		return nil, errFileIDUnsupported
	}
	id := uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow)
	return &id, nil
}
