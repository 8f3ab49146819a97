package fat

import "golang.org/x/sys/unix"

// msdosSuperMagic is unix.MSDOS_SUPER_MAGIC, the statfs type value for
// both FAT12/16 and FAT32 on Linux.
const msdosSuperMagic = unix.MSDOS_SUPER_MAGIC

// IsVolume reports whether path resides on a FAT or FAT32 volume,
// grounded on the teacher's format_statfs_linux.go magic-number
// classification.
func IsVolume(path string) bool {
	var metadata unix.Statfs_t
	if err := unix.Statfs(path, &metadata); err != nil {
		return false
	}
	return metadata.Type == msdosSuperMagic
}
