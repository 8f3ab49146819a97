//go:build !windows

package fs

import (
	"os"
	"syscall"
)

// stableFileID extracts the inode number from the POSIX stat structure,
// grounded on the teacher's device_posix.go, which performs the same
// info.Sys().(*syscall.Stat_t) extraction for DeviceID.
func stableFileID(_ string, info os.FileInfo) (*uint64, error) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, errFileIDUnsupported
	}
	id := uint64(stat.Ino)
	return &id, nil
}
