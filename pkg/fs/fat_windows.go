package fs

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/foldersync/foldersync/pkg/fs/fat"
	"github.com/foldersync/foldersync/pkg/pathutil"
)

// fatModTime decodes the (create, write) pair the "DST hack" expects when
// path resides on a FAT/FAT32 volume. It returns ok == false for any
// other volume, in which case the caller keeps the raw ModTime.
func fatModTime(path string, info os.FileInfo) (int64, bool) {
	if !fat.IsVolume(path) {
		return 0, false
	}
	raw, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return 0, false
	}
	createTime := windows.Filetime(raw.CreationTime).Nanoseconds() / 1e9
	writeTime := windows.Filetime(raw.LastWriteTime).Nanoseconds() / 1e9
	return fat.Decode(createTime, writeTime), true
}

// setFATModTime applies the DST hack's encoding to both the creation and
// last-write timestamps of path when it resides on a FAT/FAT32 volume.
func setFATModTime(path string, modificationTime int64) error {
	if !fat.IsVolume(path) {
		return nil
	}
	createUTC, writeUTC := fat.Encode(modificationTime)

	path16, err := windows.UTF16PtrFromString(pathutil.EnsureLongPath(path, false))
	if err != nil {
		return err
	}
	handle, err := windows.CreateFile(
		path16,
		windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(handle)

	create := windows.NsecToFiletime(createUTC * 1e9)
	write := windows.NsecToFiletime(writeUTC * 1e9)
	return windows.SetFileTime(handle, &create, nil, &write)
}
