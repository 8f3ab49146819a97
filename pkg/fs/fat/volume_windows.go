package fat

import "golang.org/x/sys/windows"

// IsVolume reports whether path resides on a FAT or FAT32 volume, queried
// via GetVolumeInformation's file system name (the field historically
// used to distinguish "FAT", "FAT32", and "NTFS" on Windows).
func IsVolume(path string) bool {
	path16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	rootBuffer := make([]uint16, windows.MAX_PATH)
	if err := windows.GetVolumePathName(path16, &rootBuffer[0], uint32(len(rootBuffer))); err != nil {
		return false
	}

	nameBuffer := make([]uint16, windows.MAX_PATH)
	if err := windows.GetVolumeInformation(
		&rootBuffer[0],
		nil, 0,
		nil,
		nil, nil,
		&nameBuffer[0], uint32(len(nameBuffer)),
	); err != nil {
		return false
	}
	name := windows.UTF16ToString(nameBuffer)
	return name == "FAT" || name == "FAT32"
}
